package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/wincore/pkg/config"
	"github.com/go-drift/wincore/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved window configuration",
		Long: `Resolve the window configuration for a directory and print it.

The directory defaults to the current one. wincore.yaml, wincore.yml and
wincore.toml are searched in that order; when none exists the defaults
are shown. Pass --toml to print TOML instead of YAML.`,
		Usage: "wincore config [--toml] [dir]",
		Run:   runConfig,
	})
}

// resolvedView is the printable form of config.Resolved.
type resolvedView struct {
	Source        string      `yaml:"source" toml:"source"`
	EngineVersion string      `yaml:"engine_version" toml:"engine_version"`
	Title         string      `yaml:"title" toml:"title"`
	Width         uint32      `yaml:"width,omitempty" toml:"width,omitempty"`
	Height        uint32      `yaml:"height,omitempty" toml:"height,omitempty"`
	Resizable     bool        `yaml:"resizable" toml:"resizable"`
	Mode          string      `yaml:"mode" toml:"mode"`
	Light         paletteView `yaml:"light" toml:"light"`
	Dark          paletteView `yaml:"dark" toml:"dark"`
}

type paletteView struct {
	Surface   string `yaml:"surface" toml:"surface"`
	OnSurface string `yaml:"on_surface" toml:"on_surface"`
	Primary   string `yaml:"primary" toml:"primary"`
	Outline   string `yaml:"outline" toml:"outline"`
}

func viewOf(resolved *config.Resolved) resolvedView {
	view := resolvedView{
		Source:        resolved.Path,
		EngineVersion: resolved.EngineVersion,
		Title:         resolved.Title,
		Resizable:     resolved.Resizable,
		Mode:          resolved.Theme.Active.String(),
		Light:         paletteOf(resolved.Theme.Light.ColorScheme),
		Dark:          paletteOf(resolved.Theme.Dark.ColorScheme),
	}
	if view.Source == "" {
		view.Source = "defaults"
	}
	if resolved.InnerSize != nil {
		view.Width = uint32(resolved.InnerSize.Width)
		view.Height = uint32(resolved.InnerSize.Height)
	}
	return view
}

func paletteOf(scheme theme.ColorScheme) paletteView {
	return paletteView{
		Surface:   theme.Hex(scheme.Surface),
		OnSurface: theme.Hex(scheme.OnSurface),
		Primary:   theme.Hex(scheme.Primary),
		Outline:   theme.Hex(scheme.Outline),
	}
}

func runConfig(args []string) error {
	return printConfig(args, os.Stdout)
}

func printConfig(args []string, out io.Writer) error {
	dir := "."
	asTOML := false
	for _, arg := range args {
		switch arg {
		case "--toml":
			asTOML = true
		default:
			dir = arg
		}
	}

	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	view := viewOf(resolved)

	var data []byte
	if asTOML {
		data, err = toml.Marshal(view)
	} else {
		data, err = yaml.Marshal(view)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
