// Package config loads optional window configuration files.
//
// A project may carry wincore.yaml, wincore.yml or wincore.toml next to its
// go.mod. The file sets the window title and size, whether the window is
// resizable, and the light and dark color schemes:
//
//	engine:
//	  version: v0.3.0
//	window:
//	  title: Demo
//	  width: 640
//	  height: 480
//	  resizable: true
//	theme:
//	  mode: dark
//	  dark:
//	    surface: "#101418"
//	    primary: steelblue
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	werrors "github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/theme"
)

// SupportedVersion is the engine version this module implements. Config
// files must request the same major version.
const SupportedVersion = "v0.3.0"

// FileNames lists the config file names searched for, in order.
var FileNames = []string{"wincore.yaml", "wincore.yml", "wincore.toml"}

// Config represents the optional wincore config file.
type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine"`
	Window WindowConfig `yaml:"window" toml:"window"`
	Theme  ThemeConfig  `yaml:"theme" toml:"theme"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
}

// WindowConfig contains the initial window attributes.
type WindowConfig struct {
	Title     string `yaml:"title,omitempty" toml:"title,omitempty"`
	Width     uint32 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height    uint32 `yaml:"height,omitempty" toml:"height,omitempty"`
	Resizable *bool  `yaml:"resizable,omitempty" toml:"resizable,omitempty"`
}

// ThemeConfig selects the active brightness and overrides scheme colors.
type ThemeConfig struct {
	Mode  string        `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Light PaletteConfig `yaml:"light,omitempty" toml:"light,omitempty"`
	Dark  PaletteConfig `yaml:"dark,omitempty" toml:"dark,omitempty"`
}

// PaletteConfig holds color overrides. Empty fields keep the default.
type PaletteConfig struct {
	Surface   string `yaml:"surface,omitempty" toml:"surface,omitempty"`
	OnSurface string `yaml:"on_surface,omitempty" toml:"on_surface,omitempty"`
	Primary   string `yaml:"primary,omitempty" toml:"primary,omitempty"`
	Outline   string `yaml:"outline,omitempty" toml:"outline,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, or empty for defaults.
	Path          string
	Title         string
	InnerSize     *geometry.Size
	Resizable     bool
	Theme         theme.ThemePair
	EngineVersion string
}

// Load reads the config file at path. The format follows the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &werrors.ConfigError{Path: path, Err: err}
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, &werrors.ConfigError{Path: path, Err: err}
	}
	return &cfg, nil
}

// LoadOptional reads the first config file found in dir. It returns an
// empty config and path when none exists.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", &werrors.ConfigError{Path: path, Err: err}
		}
		cfg, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return &Config{}, "", nil
}

// Resolve loads the config file in dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve(dir)
	if err != nil {
		return nil, err
	}
	resolved.Path = path
	return resolved, nil
}

// Resolve validates c and fills in defaults. dir is used to derive a title
// from the enclosing Go module when none is configured.
func (c *Config) Resolve(dir string) (*Resolved, error) {
	version, err := resolveVersion(c.Engine.Version)
	if err != nil {
		return nil, err
	}

	pair, err := c.Theme.resolve()
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Title:         strings.TrimSpace(c.Window.Title),
		Resizable:     true,
		Theme:         pair,
		EngineVersion: version,
	}
	if resolved.Title == "" {
		resolved.Title = defaultTitle(dir)
	}
	if c.Window.Resizable != nil {
		resolved.Resizable = *c.Window.Resizable
	}
	switch {
	case c.Window.Width > 0 && c.Window.Height > 0:
		size := geometry.Sz(geometry.UPx(c.Window.Width), geometry.UPx(c.Window.Height))
		resolved.InnerSize = &size
	case c.Window.Width > 0 || c.Window.Height > 0:
		return nil, &werrors.ConfigError{Field: "window", Err: errors.New("width and height must be set together")}
	}
	return resolved, nil
}

func resolveVersion(version string) (string, error) {
	version = strings.TrimSpace(version)
	if version == "" || version == "latest" {
		return SupportedVersion, nil
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return "", &werrors.ConfigError{Field: "engine.version", Err: fmt.Errorf("invalid semantic version %q", version)}
	}
	if semver.Major(version) != semver.Major(SupportedVersion) {
		return "", &werrors.ConfigError{
			Field: "engine.version",
			Err:   fmt.Errorf("version %s is not compatible with %s", version, SupportedVersion),
		}
	}
	if semver.Compare(version, SupportedVersion) > 0 {
		return "", &werrors.ConfigError{
			Field: "engine.version",
			Err:   fmt.Errorf("version %s is newer than %s", version, SupportedVersion),
		}
	}
	return semver.Canonical(version), nil
}

func (t ThemeConfig) resolve() (theme.ThemePair, error) {
	pair := theme.DefaultThemePair()
	switch strings.ToLower(strings.TrimSpace(t.Mode)) {
	case "", "light":
		pair.Active = theme.BrightnessLight
	case "dark":
		pair.Active = theme.BrightnessDark
	default:
		return pair, &werrors.ConfigError{Field: "theme.mode", Err: fmt.Errorf("unknown mode %q", t.Mode)}
	}

	var err error
	if pair.Light.ColorScheme, err = t.Light.apply(pair.Light.ColorScheme, "theme.light"); err != nil {
		return pair, err
	}
	if pair.Dark.ColorScheme, err = t.Dark.apply(pair.Dark.ColorScheme, "theme.dark"); err != nil {
		return pair, err
	}
	return pair, nil
}

func (p PaletteConfig) apply(scheme theme.ColorScheme, field string) (theme.ColorScheme, error) {
	overrides := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"surface", p.Surface, &scheme.Surface},
		{"on_surface", p.OnSurface, &scheme.OnSurface},
		{"primary", p.Primary, &scheme.Primary},
		{"outline", p.Outline, &scheme.Outline},
	}
	for _, o := range overrides {
		if strings.TrimSpace(o.value) == "" {
			continue
		}
		c, err := theme.ParseColor(o.value)
		if err != nil {
			return scheme, &werrors.ConfigError{Field: field + "." + o.name, Err: err}
		}
		*o.dst = c
	}
	return scheme, nil
}

// defaultTitle derives a title from the Go module in dir, then from the
// executable name.
func defaultTitle(dir string) string {
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
			if path := modfile.ModulePath(data); path != "" {
				prefix, _, ok := module.SplitPathVersion(path)
				if ok {
					path = prefix
				}
				if base := filepath.Base(path); base != "" && base != "." {
					return base
				}
			}
		}
	}
	if exe, err := os.Executable(); err == nil {
		if base := filepath.Base(exe); base != "" && base != "." {
			return base
		}
	}
	return "wincore app"
}
