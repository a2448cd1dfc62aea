// Package device connects the lock state machines to the Drift platform layer.
//
// LocalAuth implements lock.Authenticator over the drift/local_auth method and
// event channels. Results are delivered on the UI thread via platform.Dispatch.
//
// Lifecycle implements lock.LifecycleNotifier on top of platform.Lifecycle:
//
//	resumed            -> lock.SignalActive
//	inactive           -> lock.SignalInactive
//	paused, detached   -> lock.SignalBackground
//
// Channel failures and malformed payloads are reported through the Drift
// errors package and never surface to the caller as panics.
package device
