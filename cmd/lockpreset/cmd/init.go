package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-drift/screenlock/pkg/lock"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a new preset",
		Long: `Write a preset with the default lock settings.

Flags:
  --title TEXT     Lock screen title
  --blur AMOUNT    Blur the protected content (minimum 5)
  --color HEX      Solid background, #RRGGBB or #AARRGGBB
  --manual         Wait for the unlock button instead of prompting on launch
  --force          Overwrite an existing file`,
		Usage: "lockpreset init [flags] <file>",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	cfg := lock.DefaultConfig()
	var (
		path     string
		force    bool
		blurSet  bool
		colorSet bool
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--title", "--blur", "--color":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			value := args[i+1]
			i++
			switch arg {
			case "--title":
				cfg.Title = value
			case "--blur":
				amount, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("invalid blur %q: %w", value, err)
				}
				cfg.Background = lock.Blur(amount)
				blurSet = true
			case "--color":
				c, err := lock.ParseColor(value)
				if err != nil {
					return err
				}
				cfg.Background = lock.SolidColor(c)
				colorSet = true
			}
		case "--manual":
			cfg.StartImmediately = false
		case "--force":
			force = true
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			path = arg
		}
	}

	if path == "" {
		return fmt.Errorf("file is required\n\nUsage: lockpreset init [flags] <file>")
	}
	if blurSet && colorSet {
		return errors.New("--blur and --color are mutually exclusive")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := lock.FormatConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(out, "Wrote %s (%s)\n", path, cfg.Background)
	return nil
}
