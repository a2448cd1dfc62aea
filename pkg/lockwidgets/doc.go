// Package lockwidgets provides Drift widgets that gate content behind a lock.
//
// BiometricLock wraps content with an unlock panel that is dismissed by a tap
// and comes back when the app enters the background.
//
// ScreenLock is a full-screen lock backed by the device authenticator. It
// authenticates on mount (when Config.StartImmediately is set), re-locks when
// the app becomes inactive (Config.LockOnBackground) and re-authenticates
// when the app becomes active again:
//
//	root := lockwidgets.WithScreenLock(true, lock.DefaultConfig(), app)
//
// Both widgets hold their state in the lock package and rebuild when it
// changes.
package lockwidgets
