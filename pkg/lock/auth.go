package lock

import "errors"

// Sentinel errors for the two failure kinds a lock distinguishes.
var (
	// ErrUnavailable means the device cannot evaluate the authentication
	// policy (no enrolled biometrics, no passcode, ...).
	ErrUnavailable = errors.New("lock: authentication unavailable")

	// ErrFailed means the user cancelled or failed the challenge.
	ErrFailed = errors.New("lock: authentication failed")
)

// Authenticator is the platform authentication capability.
type Authenticator interface {
	// CanAuthenticate returns nil when the device can evaluate the policy.
	// Otherwise the returned error wraps ErrUnavailable.
	CanAuthenticate() error

	// Authenticate prompts the user. done is called exactly once, on the UI
	// thread, with the outcome.
	Authenticate(reason string, done func(success bool))

	// BiometricKind reports the method the device will use.
	BiometricKind() BiometricKind
}

// Signal is an app lifecycle transition pushed by the host.
type Signal int

const (
	// SignalActive means the app is in the foreground and receiving input.
	SignalActive Signal = iota
	// SignalInactive means the app is visible but not receiving input
	// (app switcher, system dialog).
	SignalInactive
	// SignalBackground means the app is no longer visible.
	SignalBackground
)

func (s Signal) String() string {
	switch s {
	case SignalActive:
		return "active"
	case SignalInactive:
		return "inactive"
	case SignalBackground:
		return "background"
	default:
		return "unknown"
	}
}

// LifecycleNotifier delivers lifecycle signals to registered handlers.
type LifecycleNotifier interface {
	// AddHandler registers handler and returns a function that removes it.
	AddHandler(handler func(Signal)) (remove func())
}
