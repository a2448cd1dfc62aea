package main

import (
	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/screenlock/pkg/lockwidgets"
)

// buildBiometricLockPage wraps a page with the tap-to-unlock overlay.
func buildBiometricLockPage(back func()) core.Widget {
	return lockwidgets.BiometricLock{
		LockOnBackground: true,
		Message:          "Use Face ID to unlock your notes",
		Child: secretContent(
			"Notes",
			"Send the app to the background and come back: the overlay returns.",
			back,
		),
	}
}
