package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	werrors "github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/theme"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolve_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wincore.yaml", `
engine:
  version: v0.3.0
window:
  title: Demo
  width: 640
  height: 480
  resizable: false
theme:
  mode: dark
  dark:
    surface: "#101418"
    primary: steelblue
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Path != path {
		t.Errorf("Path = %q, want %q", resolved.Path, path)
	}
	if resolved.Title != "Demo" {
		t.Errorf("Title = %q", resolved.Title)
	}
	if resolved.InnerSize == nil || *resolved.InnerSize != geometry.Sz(640, 480) {
		t.Errorf("InnerSize = %v", resolved.InnerSize)
	}
	if resolved.Resizable {
		t.Error("Resizable should be false")
	}
	if resolved.Theme.Active != theme.BrightnessDark {
		t.Errorf("Active = %v", resolved.Theme.Active)
	}
	scheme := resolved.Theme.Current().ColorScheme
	if want := (color.RGBA{R: 0x10, G: 0x14, B: 0x18, A: 0xFF}); scheme.Surface != want {
		t.Errorf("Surface = %v, want %v", scheme.Surface, want)
	}
	if want := (color.RGBA{R: 70, G: 130, B: 180, A: 255}); scheme.Primary != want {
		t.Errorf("Primary = %v, want %v", scheme.Primary, want)
	}
	if scheme.Outline != theme.DarkColorScheme().Outline {
		t.Error("unset colors should keep defaults")
	}
}

func TestResolve_TOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wincore.toml", `
[window]
title = "Toml"
width = 300
height = 150

[theme]
mode = "light"

[theme.light]
on_surface = "#222"
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Title != "Toml" || !resolved.Resizable {
		t.Errorf("resolved = %+v", resolved)
	}
	if resolved.InnerSize == nil || *resolved.InnerSize != geometry.Sz(300, 150) {
		t.Errorf("InnerSize = %v", resolved.InnerSize)
	}
	if got := resolved.Theme.Light.ColorScheme.OnSurface; got != (color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}) {
		t.Errorf("OnSurface = %v", got)
	}
	if resolved.EngineVersion != SupportedVersion {
		t.Errorf("EngineVersion = %q", resolved.EngineVersion)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tools/painter/v2\n\ngo 1.24\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Path != "" {
		t.Errorf("Path = %q, want empty", resolved.Path)
	}
	if resolved.Title != "painter" {
		t.Errorf("Title = %q, want module name", resolved.Title)
	}
	if resolved.InnerSize != nil {
		t.Error("InnerSize should be unset")
	}
	if resolved.Theme != theme.DefaultThemePair() {
		t.Error("theme should be the default pair")
	}
}

func TestResolve_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wincore.toml", "[window]\ntitle = \"toml\"\n")
	writeFile(t, dir, "wincore.yaml", "window:\n  title: yaml\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Title != "yaml" {
		t.Errorf("Title = %q, want yaml", resolved.Title)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		body  string
		field string
	}{
		{"bad version", "wincore.yaml", "engine:\n  version: banana\n", "engine.version"},
		{"major mismatch", "wincore.yaml", "engine:\n  version: v1.0.0\n", "engine.version"},
		{"too new", "wincore.yaml", "engine:\n  version: v0.9.0\n", "engine.version"},
		{"bad mode", "wincore.yaml", "theme:\n  mode: sepia\n", "theme.mode"},
		{"bad color", "wincore.yaml", "theme:\n  light:\n    primary: notacolor\n", "theme.light.primary"},
		{"half size", "wincore.toml", "[window]\nwidth = 10\n", "window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.body)
			_, err := Resolve(dir)
			var cfgErr *werrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wincore.yaml", "window: [unterminated\n")
	_, err := Load(path)
	var cfgErr *werrors.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Path != path {
		t.Fatalf("expected ConfigError for %s, got %v", path, err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wincore.json", "{}")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for .json")
	}
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", SupportedVersion},
		{"latest", SupportedVersion},
		{"0.3.0", "v0.3.0"},
		{"v0.2", "v0.2.0"},
	}
	for _, tt := range tests {
		got, err := resolveVersion(tt.in)
		if err != nil {
			t.Errorf("resolveVersion(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
