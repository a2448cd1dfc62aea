package main

import (
	"github.com/go-drift/drift/pkg/core"
)

// Demo represents a showcase demo page.
type Demo struct {
	Route    string
	Title    string
	Subtitle string
	Builder  func(back func()) core.Widget
}

// demos is the registry of all showcase demo pages.
var demos = []Demo{
	{"/biometric-lock", "Biometric Lock", "Tap to unlock, re-locks in background", buildBiometricLockPage},
	{"/screen-lock", "Screen Lock", "Authenticates on launch over a blur", buildVaultPage},
	{"/screen-lock-manual", "Manual Screen Lock", "Solid background, unlock on demand", buildNotesPage},
}

func findDemo(route string) (Demo, bool) {
	for _, d := range demos {
		if d.Route == route {
			return d, true
		}
	}
	return Demo{}, false
}
