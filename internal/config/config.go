package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"

	"github.com/olivier-w/twinrod/internal/cylinder"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config tunes the animation. The zero value is not usable; start from
// Default.
type Config struct {
	FPS         int     `yaml:"fps" env:"TWINROD_FPS"`
	StepSize    float64 `yaml:"step_size" env:"TWINROD_STEP_SIZE"`
	MaxStrokePx float64 `yaml:"max_stroke_px" env:"TWINROD_MAX_STROKE_PX"`
	PxPerCell   float64 `yaml:"px_per_cell" env:"TWINROD_PX_PER_CELL"`
	DebugLog    string  `yaml:"debug_log" env:"TWINROD_DEBUG_LOG"`
}

// Default returns the stock tuning: 4 units per frame at 60 fps over a
// 120px stroke drawn at 8px per terminal column.
func Default() Config {
	return Config{
		FPS:         60,
		StepSize:    cylinder.DefaultStep,
		MaxStrokePx: cylinder.DefaultMaxStrokePx,
		PxPerCell:   8,
	}
}

// Load layers the YAML file at path (if any) and then the environment over
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalid, c.FPS)
	case c.StepSize <= 0 || c.StepSize > 100:
		return fmt.Errorf("%w: step_size must be in (0,100], got %g", ErrInvalid, c.StepSize)
	case c.MaxStrokePx <= 0:
		return fmt.Errorf("%w: max_stroke_px must be positive, got %g", ErrInvalid, c.MaxStrokePx)
	case c.PxPerCell <= 0:
		return fmt.Errorf("%w: px_per_cell must be positive, got %g", ErrInvalid, c.PxPerCell)
	}
	return nil
}

// FrameInterval is the time between animation frames.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// StrokeCells is the number of terminal columns covered by a full stroke.
func (c Config) StrokeCells() int {
	if c.PxPerCell <= 0 {
		return 0
	}
	return int(c.MaxStrokePx/c.PxPerCell + 0.5)
}
