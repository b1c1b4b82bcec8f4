package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/milk9111/gridedit/input"
	"github.com/milk9111/gridedit/level"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidConfig = errors.New("config: invalid")

// missingColor is used for tags without a valid colour entry.
var missingColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

const (
	StorageFile  = "file"
	StorageGdata = "gdata"
)

type Config struct {
	CellSize  int    `yaml:"cell_size"`
	Cols      int    `yaml:"cols"`
	Rows      int    `yaml:"rows"`
	LevelsDir string `yaml:"levels_dir"`
	AssetsDir string `yaml:"assets_dir"`
	Storage   string `yaml:"storage"`
	AppName   string `yaml:"app_name"`
	// Levels are the names offered by the start-up menu, in order.
	Levels []string `yaml:"levels"`
	// Keys maps trigger names (player, delete, save, ...) to key names.
	Keys map[string]string `yaml:"keys"`
	// Sprites maps tag names to image paths relative to AssetsDir. The first
	// frame is the one drawn in the editor.
	Sprites map[string][]string `yaml:"sprites"`
	// Colors maps tag names to colornames entries.
	Colors map[string]string `yaml:"colors"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default: %w", err)
	}
	return &cfg, nil
}

// Load reads the embedded defaults and merges the YAML file at path over
// them. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks bounds, storage, key bindings and per-tag entries.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: level bounds must be positive, got %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	}
	switch c.Storage {
	case StorageFile, StorageGdata:
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, c.Storage)
	}
	if c.Storage == StorageGdata && strings.TrimSpace(c.AppName) == "" {
		return fmt.Errorf("%w: gdata storage needs app_name", ErrInvalidConfig)
	}

	bound := make(map[string]string, len(c.Keys))
	for name, key := range c.Keys {
		if _, ok := input.ParseTrigger(name); !ok {
			return fmt.Errorf("%w: unknown trigger %q in keys", ErrInvalidConfig, name)
		}
		k := strings.ToLower(strings.TrimSpace(key))
		if k == "" {
			return fmt.Errorf("%w: trigger %q has no key", ErrInvalidConfig, name)
		}
		if other, dup := bound[k]; dup {
			return fmt.Errorf("%w: key %q bound to both %q and %q", ErrInvalidConfig, key, other, name)
		}
		bound[k] = name
	}
	for _, t := range input.Precedence {
		if _, ok := c.Keys[t.String()]; !ok {
			return fmt.Errorf("%w: trigger %q has no key", ErrInvalidConfig, t)
		}
	}

	for name := range c.Sprites {
		if _, ok := level.ParseTag(name); !ok {
			return fmt.Errorf("%w: unknown tag %q in sprites", ErrInvalidConfig, name)
		}
	}
	for name, col := range c.Colors {
		if _, ok := level.ParseTag(name); !ok {
			return fmt.Errorf("%w: unknown tag %q in colors", ErrInvalidConfig, name)
		}
		if _, ok := colornames.Map[strings.ToLower(col)]; !ok {
			return fmt.Errorf("%w: unknown color %q for %s", ErrInvalidConfig, col, name)
		}
	}
	return nil
}

// KeyFor returns the key name bound to t.
func (c *Config) KeyFor(t input.Trigger) string {
	return c.Keys[t.String()]
}

// Sprite returns the editor frame for tag, or "" when the tag is drawn as a
// coloured rectangle.
func (c *Config) Sprite(tag level.Tag) string {
	frames := c.Sprites[tag.String()]
	if len(frames) == 0 {
		return ""
	}
	return frames[0]
}

// Color returns the placeholder colour for tag.
func (c *Config) Color(tag level.Tag) color.RGBA {
	if col, ok := colornames.Map[strings.ToLower(c.Colors[tag.String()])]; ok {
		return col
	}
	return missingColor
}
