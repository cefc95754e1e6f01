package config

import (
	"path/filepath"
	"testing"
)

func TestSaveToRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	off := false
	cfg := &Config{
		VTVersion:  4,
		SmartNames: &off,
		UI: UIConfig{
			Accent:    "#FF8800",
			CodeTheme: "nord",
		},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}

	if loaded.VTVersion != 4 {
		t.Fatalf("expected vt_version=4, got %d", loaded.VTVersion)
	}
	if loaded.SmartNames == nil || *loaded.SmartNames {
		t.Fatalf("expected smart_names=false, got %#v", loaded.SmartNames)
	}
	if loaded.UI.Accent != "#FF8800" {
		t.Fatalf("expected ui.accent '#FF8800', got %q", loaded.UI.Accent)
	}
	if loaded.UI.CodeTheme != "nord" {
		t.Fatalf("expected ui.code_theme 'nord', got %q", loaded.UI.CodeTheme)
	}
}

func TestSaveToOmitsUnsetFields(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	if err := SaveTo(path, &Config{}); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}

	if loaded.VTVersion != 0 {
		t.Fatalf("expected vt_version unset, got %d", loaded.VTVersion)
	}
	if loaded.SmartNames != nil {
		t.Fatalf("expected smart_names unset, got %#v", loaded.SmartNames)
	}
	if !loaded.SmartNamesEnabled() {
		t.Fatal("expected smart names to default on after round trip")
	}
}
