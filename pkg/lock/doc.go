// Package lock provides the lock-state machines behind the screenlock widgets.
//
// The package is framework independent: it knows nothing about widgets or
// rendering. The widgets in package lockwidgets host these types and rebuild
// whenever they report a change.
//
// # Overlay
//
// Overlay models a content wrapper that is unlocked manually and re-locks when
// the app enters the background:
//
//	ov := lock.NewOverlay(false, true, lock.WithOverlayChange(func(unlocked bool) {
//	    // rebuild
//	}))
//	ov.Mount(device.Lifecycle)
//	defer ov.Unmount()
//
// # ScreenLock
//
// ScreenLock drives a platform authentication round-trip. At most one attempt
// is in flight per instance; a completion that arrives after the lock was
// invalidated (re-locked or unmounted) is discarded.
//
//	sl := lock.NewScreenLock(cfg, device.NewLocalAuth(), lock.WithChange(func(st lock.ScreenState) {
//	    // rebuild
//	}))
//	sl.Mount(device.Lifecycle) // authenticates immediately if cfg.StartImmediately
//
// # Presentation
//
// Rendering decisions are derived from state only. Present and PresentOverlay
// are pure functions that widgets translate into opacity, blur and text.
//
// # Configuration
//
// Config values are supplied once at mount. Presets may be loaded from YAML
// with LoadConfig or ParseConfig.
package lock
