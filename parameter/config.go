package parameter

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bounce/core"
)

// Simulation defaults
const (
	DefaultFPS         = 60
	DefaultArenaWidth  = 800.0
	DefaultArenaHeight = 800.0
	DefaultEntityCount = 10
	DefaultSizeMin     = 20.0
	DefaultSizeMax     = 80.0
	DefaultSpeedMin    = -400.0
	DefaultSpeedMax    = 400.0
)

// Config is every simulation input, explicit at initialization. Hosts thread
// a Config through construction; nothing reads process-wide state.
type Config struct {
	FPS         int      `toml:"fps"`
	ArenaWidth  float64  `toml:"arena_width"`
	ArenaHeight float64  `toml:"arena_height"`
	EntityCount int      `toml:"entity_count"`
	SizeMin     float64  `toml:"size_min"`
	SizeMax     float64  `toml:"size_max"`
	SpeedMin    float64  `toml:"speed_min"`
	SpeedMax    float64  `toml:"speed_max"`
	Palette     []string `toml:"palette"`
	Seed        uint64   `toml:"seed"` // 0 selects a time-derived seed at the host

	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig configures the host logger. The terminal UI owns stdout, so
// logs go to a file.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
	File   string `toml:"file"`
}

// paletteByName maps config color names to display values
var paletteByName = map[string]core.RGB{
	"red":     core.RGBRed,
	"orange":  core.RGBOrange,
	"yellow":  core.RGBYellow,
	"green":   core.RGBGreen,
	"cyan":    core.RGBCyan,
	"blue":    core.RGBBlue,
	"magenta": core.RGBMagenta,
}

// DefaultConfig returns the stock configuration: 60 FPS, 800x800 arena, ten
// entities sized 20-80 with per-axis speeds in -400..400 and the seven-color
// palette.
func DefaultConfig() Config {
	return Config{
		FPS:         DefaultFPS,
		ArenaWidth:  DefaultArenaWidth,
		ArenaHeight: DefaultArenaHeight,
		EntityCount: DefaultEntityCount,
		SizeMin:     DefaultSizeMin,
		SizeMax:     DefaultSizeMax,
		SpeedMin:    DefaultSpeedMin,
		SpeedMax:    DefaultSpeedMax,
		Palette:     []string{"red", "orange", "yellow", "green", "cyan", "blue", "magenta"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "bounce.log",
		},
	}
}

// Load reads a TOML file over the defaults, so omitted fields keep their
// stock values, then validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot honor
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 1000 {
		return fmt.Errorf("fps %d: must be between 1 and 1000", c.FPS)
	}
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("arena %gx%g: dimensions must be positive", c.ArenaWidth, c.ArenaHeight)
	}
	if c.EntityCount < 0 {
		return fmt.Errorf("entity_count %d: must not be negative", c.EntityCount)
	}
	if c.SizeMin <= 0 || c.SizeMin > c.SizeMax {
		return fmt.Errorf("size range %g-%g: need 0 < min <= max", c.SizeMin, c.SizeMax)
	}
	if c.SizeMax > c.ArenaWidth || c.SizeMax > c.ArenaHeight {
		return fmt.Errorf("size_max %g exceeds arena %gx%g", c.SizeMax, c.ArenaWidth, c.ArenaHeight)
	}
	if c.SpeedMin > c.SpeedMax {
		return fmt.Errorf("speed range %g-%g: min exceeds max", c.SpeedMin, c.SpeedMax)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette: must name at least one color")
	}
	for _, name := range c.Palette {
		if _, ok := paletteByName[strings.ToLower(name)]; !ok {
			return fmt.Errorf("palette: unknown color %q", name)
		}
	}
	return nil
}

// PaletteRGB resolves the configured color names to display values,
// preserving order. Call after Validate.
func (c *Config) PaletteRGB() []core.RGB {
	out := make([]core.RGB, 0, len(c.Palette))
	for _, name := range c.Palette {
		if rgb, ok := paletteByName[strings.ToLower(name)]; ok {
			out = append(out, rgb)
		}
	}
	return out
}

// RandomSpec converts the config to the factory sampling bounds
func (c *Config) RandomSpec() core.RandomSpec {
	return core.RandomSpec{
		ArenaWidth:  c.ArenaWidth,
		ArenaHeight: c.ArenaHeight,
		SizeMin:     c.SizeMin,
		SizeMax:     c.SizeMax,
		SpeedMin:    c.SpeedMin,
		SpeedMax:    c.SpeedMax,
		Palette:     c.PaletteRGB(),
	}
}
