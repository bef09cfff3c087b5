package parameter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/bounce/core"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.FPS != 60 || cfg.ArenaWidth != 800 || cfg.ArenaHeight != 800 || cfg.EntityCount != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Palette) != 7 {
		t.Errorf("default palette: got %d colors, want 7", len(cfg.Palette))
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative arena", func(c *Config) { c.ArenaWidth = -100 }},
		{"negative count", func(c *Config) { c.EntityCount = -1 }},
		{"zero size min", func(c *Config) { c.SizeMin = 0 }},
		{"inverted size range", func(c *Config) { c.SizeMin = 90; c.SizeMax = 80 }},
		{"size exceeds arena", func(c *Config) { c.SizeMax = 900 }},
		{"inverted speed range", func(c *Config) { c.SpeedMin = 500 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"unknown color", func(c *Config) { c.Palette = []string{"mauve"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestPaletteRGBPreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = []string{"blue", "RED"}

	got := cfg.PaletteRGB()
	if len(got) != 2 || got[0] != core.RGBBlue || got[1] != core.RGBRed {
		t.Errorf("palette rgb: got %+v", got)
	}
}

func TestLoadAppliesDefaultsToOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.toml")
	body := `
fps = 30
entity_count = 4
palette = ["green", "blue"]

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 30 || cfg.EntityCount != 4 {
		t.Errorf("file fields not applied: %+v", cfg)
	}
	if cfg.ArenaWidth != DefaultArenaWidth || cfg.SizeMax != DefaultSizeMax {
		t.Errorf("omitted fields lost defaults: %+v", cfg)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("palette: got %v", cfg.Palette)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging: got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.toml")
	if err := os.WriteFile(path, []byte("fps = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid config loaded")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestRandomSpecConversion(t *testing.T) {
	cfg := DefaultConfig()
	spec := cfg.RandomSpec()

	if spec.ArenaWidth != cfg.ArenaWidth || spec.ArenaHeight != cfg.ArenaHeight {
		t.Errorf("arena not carried: %+v", spec)
	}
	if spec.SizeMin != cfg.SizeMin || spec.SizeMax != cfg.SizeMax {
		t.Errorf("size range not carried: %+v", spec)
	}
	if spec.SpeedMin != cfg.SpeedMin || spec.SpeedMax != cfg.SpeedMax {
		t.Errorf("speed range not carried: %+v", spec)
	}
	if len(spec.Palette) != len(cfg.Palette) {
		t.Errorf("palette not carried: %+v", spec.Palette)
	}
}
