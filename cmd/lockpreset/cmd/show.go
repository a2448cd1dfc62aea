package cmd

import (
	"errors"
	"fmt"

	"github.com/go-drift/screenlock/cmd/lockpreset/internal/project"
	"github.com/go-drift/screenlock/pkg/lock"
)

func init() {
	RegisterCommand(&Command{
		Name:  "show",
		Short: "Show a resolved preset",
		Long: `Show a preset after defaults are applied, and how the lock screen
renders in each phase.

With no arguments, the project's default preset (presets.default in
screenlock.yaml) is shown, or the built-in defaults when none is set.`,
		Usage: "lockpreset show [file]",
		Run:   runShow,
	})
}

// showStates are the lock screen states printed by show.
var showStates = []struct {
	name  string
	state lock.ScreenState
}{
	{"pending", lock.ScreenState{}},
	{"locked", lock.ScreenState{Revealed: true}},
	{"authenticating", lock.ScreenState{Revealed: true, Authenticating: true}},
	{"unlocked", lock.ScreenState{Unlocked: true, Revealed: true}},
}

func runShow(args []string) error {
	var (
		cfg    lock.Config
		source string
		err    error
	)
	switch {
	case len(args) > 1:
		return fmt.Errorf("expected at most one preset\n\nUsage: lockpreset show [file]")
	case len(args) == 1:
		source = args[0]
		cfg, err = readPreset(source)
	default:
		cfg, source, err = projectDefault()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Preset: %s\n\n", source)
	fmt.Fprintf(out, "  title:              %s\n", cfg.Title)
	if cfg.Description != "" {
		fmt.Fprintf(out, "  description:        %s\n", cfg.Description)
	} else {
		fmt.Fprintln(out, "  description:        (from biometric kind)")
		for _, kind := range []lock.BiometricKind{
			lock.BiometricFaceID,
			lock.BiometricTouchID,
			lock.BiometricFingerprint,
			lock.BiometricFace,
			lock.BiometricNone,
		} {
			fmt.Fprintf(out, "    %-12s %s\n", kind+":", lock.DefaultDescription(kind))
		}
	}
	fmt.Fprintf(out, "  lock on background: %v\n", cfg.LockOnBackground)
	fmt.Fprintf(out, "  start immediately:  %v\n", cfg.StartImmediately)
	fmt.Fprintf(out, "  reason:             %s\n", cfg.Reason)
	fmt.Fprintf(out, "  background:         %s\n", cfg.Background)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Phases:")
	fmt.Fprintf(out, "  %-16s %-6s %-9s %-7s %-6s %s\n", "STATE", "LOCK", "CONTROLS", "BUTTON", "INPUT", "BLUR")
	for _, s := range showStates {
		st := s.state
		st.Title = cfg.Title
		p := lock.Present(st, cfg.Background)
		fmt.Fprintf(out, "  %-16s %-6g %-9g %-7s %-6s %g\n",
			s.name, p.LockOpacity, p.ControlsOpacity,
			onOff(p.ShowUnlockButton), blocked(p.BlockInput), p.BlurSigma)
	}
	return nil
}

// projectDefault loads the project's default preset. Outside a Go module, or
// when no default is configured, the built-in defaults are used. A broken
// screenlock.yaml or a missing default preset is an error.
func projectDefault() (lock.Config, string, error) {
	r, err := resolveProject()
	if errors.Is(err, project.ErrNoProject) {
		return lock.DefaultConfig(), "(defaults)", nil
	}
	if err != nil {
		return lock.Config{}, "", err
	}
	if r.Default == "" {
		return lock.DefaultConfig(), "(defaults)", nil
	}
	cfg, err := readPreset(r.Default)
	return cfg, r.Default, err
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func blocked(b bool) string {
	if b {
		return "block"
	}
	return "pass"
}
