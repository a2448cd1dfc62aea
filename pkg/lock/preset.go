package lock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// presetFile is the YAML shape of a lock preset.
type presetFile struct {
	Title            *string           `yaml:"title,omitempty"`
	Description      string            `yaml:"description,omitempty"`
	LockOnBackground *bool             `yaml:"lock_on_background,omitempty"`
	StartImmediately *bool             `yaml:"start_immediately,omitempty"`
	Reason           *string           `yaml:"reason,omitempty"`
	Background       *presetBackground `yaml:"background,omitempty"`
}

type presetBackground struct {
	Blur  *float64 `yaml:"blur,omitempty"`
	Color string   `yaml:"color,omitempty"`
}

// LoadConfig reads a YAML preset from path. A missing file yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML preset. Fields left out keep their DefaultConfig
// values; fields present keep their value even when empty.
func ParseConfig(data []byte) (Config, error) {
	var p presetFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if p.Title != nil {
		cfg.Title = *p.Title
	}
	cfg.Description = p.Description
	if p.LockOnBackground != nil {
		cfg.LockOnBackground = *p.LockOnBackground
	}
	if p.StartImmediately != nil {
		cfg.StartImmediately = *p.StartImmediately
	}
	if p.Reason != nil {
		cfg.Reason = *p.Reason
	}
	if p.Background != nil {
		bg, err := p.Background.resolve()
		if err != nil {
			return Config{}, err
		}
		cfg.Background = bg
	}
	return cfg, nil
}

func (b *presetBackground) resolve() (Background, error) {
	switch {
	case b.Blur != nil && b.Color != "":
		return Background{}, errors.New("background: blur and color are mutually exclusive")
	case b.Blur != nil:
		return Blur(*b.Blur), nil
	case b.Color != "":
		c, err := ParseColor(b.Color)
		if err != nil {
			return Background{}, fmt.Errorf("background: %w", err)
		}
		return SolidColor(c), nil
	default:
		return Background{}, errors.New("background: one of blur or color is required")
	}
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB". Six-digit colors are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// FormatConfig encodes cfg as a YAML preset that ParseConfig reads back.
func FormatConfig(cfg Config) ([]byte, error) {
	title, reason := cfg.Title, cfg.Reason
	lockOnBackground := cfg.LockOnBackground
	startImmediately := cfg.StartImmediately
	p := presetFile{
		Title:            &title,
		Description:      cfg.Description,
		LockOnBackground: &lockOnBackground,
		StartImmediately: &startImmediately,
		Reason:           &reason,
		Background:       &presetBackground{},
	}
	if cfg.Background.IsBlur() {
		blur := cfg.Background.blur
		p.Background.Blur = &blur
	} else {
		p.Background.Color = cfg.Background.Color().String()
	}
	return yaml.Marshal(&p)
}
