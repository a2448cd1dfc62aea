package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/screenlock/pkg/lock"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate presets",
		Long: `Validate one or more lock presets.

With no arguments, every .yaml file in the project's preset directory is
checked. The preset directory defaults to ./presets and can be changed in
screenlock.yaml:

  presets:
    dir: config/locks`,
		Usage: "lockpreset check [file...]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	paths := args
	if len(paths) == 0 {
		r, err := resolveProject()
		if err != nil {
			return err
		}
		paths, err = r.Presets()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no presets found in %s", r.PresetDir)
		}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := readPreset(path)
		if err != nil {
			fmt.Fprintf(out, "  FAIL  %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(out, "  ok    %s (%q, %s)\n", path, cfg.Title, cfg.Background)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d presets invalid", failed, len(paths))
	}
	return nil
}

// readPreset reads and parses a preset. Unlike lock.LoadConfig, a missing
// file is an error.
func readPreset(path string) (lock.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lock.Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := lock.ParseConfig(data)
	if err != nil {
		return lock.Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
