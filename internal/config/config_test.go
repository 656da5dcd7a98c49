package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.SettingsDir == "" {
		t.Error("defaults missing settings dir")
	}
	if len(settings.ScriptDirs) == 0 {
		t.Error("defaults missing script dirs")
	}
}

func TestLoad_ParsesSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overmenu.toml")
	body := `
settings_dir = "/var/lib/overmenu"
script_dirs = ["/opt/scripts", "/home/user/scripts"]

[[plugins]]
name = "orbwalker"
enabled = true

[[plugins]]
name = "evade"
enabled = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.SettingsDir != "/var/lib/overmenu" {
		t.Errorf("SettingsDir = %q", settings.SettingsDir)
	}
	if len(settings.ScriptDirs) != 2 || settings.ScriptDirs[0] != "/opt/scripts" {
		t.Errorf("ScriptDirs = %v", settings.ScriptDirs)
	}
	if len(settings.Plugins) != 2 {
		t.Fatalf("Plugins = %v", settings.Plugins)
	}
	if settings.Plugins[0].Name != "orbwalker" || !settings.Plugins[0].Enabled {
		t.Errorf("Plugins[0] = %+v", settings.Plugins[0])
	}
	if settings.Plugins[1].Enabled {
		t.Errorf("Plugins[1] = %+v", settings.Plugins[1])
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overmenu.toml")
	if err := os.WriteFile(path, []byte(`settings_dir = "/custom"`), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.SettingsDir != "/custom" {
		t.Errorf("SettingsDir = %q", settings.SettingsDir)
	}
	if len(settings.ScriptDirs) == 0 {
		t.Error("unset script dirs did not keep defaults")
	}
}

func TestLoad_MalformedFileReturnsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overmenu.toml")
	if err := os.WriteFile(path, []byte(`settings_dir = [not toml`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("Path = %q, want %q", parseErr.Path, path)
	}
	if parseErr.Unwrap() == nil {
		t.Error("ParseError does not wrap the cause")
	}
}
