package lock

import (
	"sync"

	"github.com/go-drift/drift/pkg/errors"
)

// Overlay is the state behind a content wrapper that shows an unlock
// affordance while locked. It trusts its seed value and never calls the
// platform authenticator.
type Overlay struct {
	lockOnBackground bool
	onChange         func(unlocked bool)

	mu          sync.Mutex
	unlocked    bool
	unsubscribe func()
}

// OverlayOption configures an Overlay.
type OverlayOption func(*Overlay)

// WithOverlayChange registers a callback invoked after every change of the
// unlocked flag.
func WithOverlayChange(fn func(unlocked bool)) OverlayOption {
	return func(o *Overlay) {
		o.onChange = fn
	}
}

// NewOverlay creates an Overlay seeded with unlocked.
func NewOverlay(unlocked, lockOnBackground bool, opts ...OverlayOption) *Overlay {
	o := &Overlay{
		unlocked:         unlocked,
		lockOnBackground: lockOnBackground,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Unlocked reports whether the content is unlocked.
func (o *Overlay) Unlocked() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.unlocked
}

// ShowsOverlay reports whether the unlock affordance is displayed.
func (o *Overlay) ShowsOverlay() bool {
	return !o.Unlocked()
}

// LockOnBackground reports the configured background policy.
func (o *Overlay) LockOnBackground() bool {
	return o.lockOnBackground
}

// Unlock unlocks the content. It is the action behind the unlock button.
func (o *Overlay) Unlock() {
	o.set(true)
}

// HandleLifecycle applies the background re-lock policy.
func (o *Overlay) HandleLifecycle(sig Signal) {
	if sig == SignalBackground && o.lockOnBackground {
		o.set(false)
	}
}

// Mount subscribes to lifecycle signals. Calling Mount again replaces the
// previous subscription.
func (o *Overlay) Mount(n LifecycleNotifier) {
	if n == nil {
		return
	}
	remove := n.AddHandler(o.HandleLifecycle)
	o.mu.Lock()
	prev := o.unsubscribe
	o.unsubscribe = remove
	o.mu.Unlock()
	if prev != nil {
		prev()
	}
}

// Unmount removes the lifecycle subscription.
func (o *Overlay) Unmount() {
	o.mu.Lock()
	remove := o.unsubscribe
	o.unsubscribe = nil
	o.mu.Unlock()
	if remove != nil {
		remove()
	}
}

func (o *Overlay) set(unlocked bool) {
	o.mu.Lock()
	changed := o.unlocked != unlocked
	o.unlocked = unlocked
	o.mu.Unlock()
	if changed && o.onChange != nil {
		defer errors.Recover("lock.Overlay.onChange")
		o.onChange(unlocked)
	}
}
