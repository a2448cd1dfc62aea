// Package project locates a screen lock project and its presets.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// ErrNoProject is returned by FindProjectRoot when no go.mod encloses the
// directory.
var ErrNoProject = errors.New("not in a Go module (no go.mod found)")

// FileName is the optional project configuration file.
const FileName = "screenlock.yaml"

// DefaultPresetDir is where presets live when FileName does not say otherwise.
const DefaultPresetDir = "presets"

// Config represents the optional screenlock.yaml configuration.
type Config struct {
	Presets PresetsConfig `yaml:"presets"`
}

// PresetsConfig contains preset discovery settings.
type PresetsConfig struct {
	Dir     string `yaml:"dir,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Resolved contains resolved project values.
type Resolved struct {
	Root       string
	ModulePath string
	PresetDir  string
	// Default is the preset used when a command is given no file, or "".
	Default string
}

// LoadOptional reads screenlock.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads screenlock.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	presetDir := strings.TrimSpace(cfg.Presets.Dir)
	if presetDir == "" {
		presetDir = DefaultPresetDir
	}
	if filepath.IsAbs(presetDir) || strings.HasPrefix(filepath.Clean(presetDir), "..") {
		return nil, fmt.Errorf("presets.dir %q must be inside the project", presetDir)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		PresetDir:  filepath.Join(dir, presetDir),
	}
	if def := strings.TrimSpace(cfg.Presets.Default); def != "" {
		r.Default = filepath.Join(r.PresetDir, def)
	}
	return r, nil
}

// FindProjectRoot walks up from dir to find go.mod.
func FindProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// Presets lists the YAML presets in the project, sorted by path.
func (r *Resolved) Presets() ([]string, error) {
	entries, err := os.ReadDir(r.PresetDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			out = append(out, filepath.Join(r.PresetDir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path: %w", err)
	}
	return path, nil
}
