package main

import (
	"embed"
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"

	"github.com/go-drift/screenlock/pkg/lock"
	"github.com/go-drift/screenlock/pkg/lockwidgets"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// loadPreset parses an embedded lock preset, falling back to the defaults.
func loadPreset(name string) lock.Config {
	data, err := presetFS.ReadFile("presets/" + name)
	if err != nil {
		log.Printf("preset %s: %v", name, err)
		return lock.DefaultConfig()
	}
	cfg, err := lock.ParseConfig(data)
	if err != nil {
		log.Printf("preset %s: %v", name, err)
		return lock.DefaultConfig()
	}
	return cfg
}

// buildVaultPage authenticates as soon as the page opens.
func buildVaultPage(back func()) core.Widget {
	return lockwidgets.WithScreenLock(true, loadPreset("vault.yaml"), secretContent(
		"Vault",
		"Authenticated. Leaving the app locks the vault again.",
		back,
	))
}

// buildNotesPage starts revealed and waits for the unlock button.
func buildNotesPage(back func()) core.Widget {
	return lockwidgets.ScreenLock{
		Config: loadPreset("notes.yaml"),
		Style: &lockwidgets.Style{
			TitleColor:      graphics.ColorWhite,
			ButtonColor:     graphics.ColorWhite,
			ButtonTextColor: graphics.ColorBlack,
		},
		Child: secretContent("Notes", "Unlocked on demand.", back),
	}
}
