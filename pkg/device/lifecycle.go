package device

import (
	"github.com/go-drift/drift/pkg/platform"

	"github.com/go-drift/screenlock/pkg/lock"
)

// Lifecycle delivers Drift app lifecycle changes as lock signals.
var Lifecycle = NewLifecycleNotifier(platform.Lifecycle)

// LifecycleSource is the subset of platform.LifecycleService the notifier needs.
type LifecycleSource interface {
	AddHandler(handler platform.LifecycleHandler) func()
}

// LifecycleNotifier adapts a LifecycleSource to lock.LifecycleNotifier.
type LifecycleNotifier struct {
	source LifecycleSource
}

// NewLifecycleNotifier wraps source.
func NewLifecycleNotifier(source LifecycleSource) *LifecycleNotifier {
	return &LifecycleNotifier{source: source}
}

// AddHandler registers handler and returns a function that removes it.
// States with no lock meaning are dropped.
func (n *LifecycleNotifier) AddHandler(handler func(lock.Signal)) func() {
	if handler == nil {
		return func() {}
	}
	return n.source.AddHandler(func(state platform.LifecycleState) {
		if sig, ok := SignalFor(state); ok {
			handler(sig)
		}
	})
}

// SignalFor maps a Drift lifecycle state to a lock signal.
// Paused and detached both mean the app is no longer visible.
func SignalFor(state platform.LifecycleState) (lock.Signal, bool) {
	switch state {
	case platform.LifecycleStateResumed:
		return lock.SignalActive, true
	case platform.LifecycleStateInactive:
		return lock.SignalInactive, true
	case platform.LifecycleStatePaused, platform.LifecycleStateDetached:
		return lock.SignalBackground, true
	default:
		return 0, false
	}
}
