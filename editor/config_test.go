package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ondeweb/material-icon-gen/compose"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icongen.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
base_color = "#102030"
icon_color = "white"
base_shape = "circle"
icon_scale = 0.75
size = 256

[shadow]
length = 0.5
opacity = 0.4
fade = true

[[densities]]
name = "mdpi"
size = 48

[[densities]]
name = "xhdpi"
size = 96
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	o, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if o.BaseColor.R != 0x10 || o.BaseColor.B != 0x30 {
		t.Errorf("base color = %v", o.BaseColor)
	}
	if o.IconColor.R != 0xFF {
		t.Errorf("icon color = %v", o.IconColor)
	}
	if o.Base != compose.BaseCircle {
		t.Errorf("base shape = %v", o.Base)
	}
	if o.IconScale != 0.75 || o.Size != 256 {
		t.Errorf("scale/size = %v/%v", o.IconScale, o.Size)
	}
	if o.Shadow.Length != 0.5 || !o.Shadow.Fade {
		t.Errorf("shadow = %v", o.Shadow)
	}
	ds := cfg.ExportDensities()
	if len(ds) != 2 || ds[1].Name != "xhdpi" || ds[1].Size != 96 {
		t.Errorf("densities = %v", ds)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	o, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if o != compose.DefaultOptions() {
		t.Errorf("empty config deviates from defaults: %v", o)
	}
	if len(cfg.ExportDensities()) != 5 {
		t.Errorf("empty config should use the standard ladder")
	}
}

func TestConfigRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		`base_color = "nope"`,
		`icon_color = "none"`,
		`base_shape = "triangle"`,
	} {
		cfg, err := LoadConfig(writeConfig(t, body))
		if err != nil {
			t.Fatalf("loading %q: %v", body, err)
		}
		if _, err := cfg.Options(); err == nil {
			t.Errorf("config %q: expected an error", body)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
