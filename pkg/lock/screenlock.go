package lock

import (
	"fmt"
	"sync"

	"github.com/go-drift/drift/pkg/errors"
)

// Phase is the coarse state of a ScreenLock.
type Phase int

const (
	// PhaseLocked means content is hidden and no attempt is outstanding.
	PhaseLocked Phase = iota
	// PhaseAuthenticating means a platform prompt is outstanding.
	PhaseAuthenticating
	// PhaseUnlocked means content is visible.
	PhaseUnlocked
)

func (p Phase) String() string {
	switch p {
	case PhaseLocked:
		return "locked"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// ScreenState is a snapshot of a ScreenLock.
type ScreenState struct {
	// Unlocked is the single source of truth for content visibility.
	Unlocked bool
	// Revealed is set once the lock UI may be shown. It never goes back to false.
	Revealed bool
	// Authenticating is set while a platform prompt is outstanding.
	Authenticating bool
	Title          string
	Description    string
}

// Option configures a ScreenLock.
type Option func(*ScreenLock)

// WithChange registers a callback invoked with a fresh snapshot after every
// state change. It runs on the goroutine that caused the change, which is the
// UI thread when the authenticator honours its contract.
func WithChange(fn func(ScreenState)) Option {
	return func(s *ScreenLock) {
		s.onChange = fn
	}
}

// ScreenLock gates content behind a platform authentication challenge.
//
// At most one platform attempt is outstanding at a time. Every attempt
// carries a sequence number; the completion is applied only if that number is
// still current. Leaving the foreground while locked or unmounting the lock
// invalidates the outstanding attempt.
type ScreenLock struct {
	cfg      Config
	auth     Authenticator
	onChange func(ScreenState)

	mu          sync.Mutex
	st          ScreenState
	seq         uint64 // last issued attempt
	current     uint64 // attempt whose result may still be applied, 0 if none
	inFlight    bool
	queued      bool
	mounted     bool
	disposed    bool
	unsubscribe func()
}

// NewScreenLock creates a locked ScreenLock. A nil auth behaves like a device
// that cannot authenticate.
func NewScreenLock(cfg Config, auth Authenticator, opts ...Option) *ScreenLock {
	if auth == nil {
		auth = unavailableAuth{}
	}
	desc := cfg.Description
	if desc == "" {
		desc = DefaultDescription(auth.BiometricKind())
	}
	s := &ScreenLock{
		cfg:  cfg,
		auth: auth,
		st: ScreenState{
			Revealed:    !cfg.StartImmediately,
			Title:       cfg.Title,
			Description: desc,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the lock was built with.
func (s *ScreenLock) Config() Config {
	return s.cfg
}

// State returns a snapshot of the current state.
func (s *ScreenLock) State() ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// Phase returns the coarse state.
func (s *ScreenLock) Phase() Phase {
	st := s.State()
	switch {
	case st.Unlocked:
		return PhaseUnlocked
	case st.Authenticating:
		return PhaseAuthenticating
	default:
		return PhaseLocked
	}
}

// Presentation derives the rendering decisions for the current state.
func (s *ScreenLock) Presentation() Presentation {
	return Present(s.State(), s.cfg.Background)
}

// Mount subscribes to lifecycle signals and, if the lock starts immediately,
// begins the first authentication attempt. Only the first call has an effect.
func (s *ScreenLock) Mount(n LifecycleNotifier) {
	s.mu.Lock()
	if s.mounted || s.disposed {
		s.mu.Unlock()
		return
	}
	s.mounted = true
	s.mu.Unlock()

	if n != nil {
		remove := n.AddHandler(s.HandleLifecycle)
		s.mu.Lock()
		s.unsubscribe = remove
		s.mu.Unlock()
	}

	if s.cfg.StartImmediately {
		s.Authenticate()
	}
}

// Unmount removes the lifecycle subscription and discards any outstanding
// attempt. The lock is unusable afterwards.
func (s *ScreenLock) Unmount() {
	s.mu.Lock()
	remove := s.unsubscribe
	s.unsubscribe = nil
	s.disposed = true
	s.current = 0
	s.queued = false
	s.mu.Unlock()
	if remove != nil {
		remove()
	}
}

// Authenticate starts an authentication attempt and reports whether a
// platform prompt was issued. It is a no-op while unlocked. A call made while
// another attempt is outstanding is coalesced into it; if that attempt's
// result turns out stale, one new attempt is started when it completes.
func (s *ScreenLock) Authenticate() bool {
	s.mu.Lock()
	if s.disposed || s.st.Unlocked {
		s.mu.Unlock()
		return false
	}
	if s.inFlight {
		s.queued = true
		s.mu.Unlock()
		return false
	}
	s.seq++
	seq := s.seq
	s.current = seq
	s.inFlight = true
	s.mu.Unlock()

	if err := s.auth.CanAuthenticate(); err != nil {
		errors.Report(&errors.DriftError{
			Op:   "lock.ScreenLock.Authenticate",
			Kind: errors.KindPlatform,
			Err:  fmt.Errorf("%w: %v", ErrUnavailable, err),
		})
		s.mu.Lock()
		s.inFlight = false
		s.queued = false
		s.current = 0
		if s.disposed {
			s.mu.Unlock()
			return false
		}
		s.st.Unlocked = false
		s.st.Revealed = true
		s.st.Title = UnavailableTitle
		s.st.Description = UnavailableDescription
		st := s.st
		s.mu.Unlock()
		s.notify(st)
		return false
	}

	s.mu.Lock()
	s.st.Authenticating = true
	st := s.st
	s.mu.Unlock()
	s.notify(st)

	s.auth.Authenticate(s.cfg.reason(), func(success bool) {
		s.complete(seq, success)
	})
	return true
}

// complete applies the outcome of attempt seq.
func (s *ScreenLock) complete(seq uint64, success bool) {
	s.mu.Lock()
	if seq != s.seq || !s.inFlight {
		// Duplicate or unknown completion.
		s.mu.Unlock()
		return
	}
	s.inFlight = false
	stale := s.current != seq
	s.current = 0
	replay := stale && s.queued && !s.disposed
	s.queued = false
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.st.Authenticating = false
	s.st.Revealed = true
	if !stale {
		s.st.Unlocked = success
	}
	st := s.st
	s.mu.Unlock()

	s.notify(st)
	if replay {
		s.Authenticate()
	}
}

// HandleLifecycle applies the lifecycle policy:
//   - inactive re-locks when LockOnBackground is set
//   - background discards an outstanding attempt when LockOnBackground is set
//   - active re-authenticates when StartImmediately is set and the lock is locked
//
// Only a background signal or Unmount invalidates the outstanding attempt.
// An inactive signal re-locks but leaves the attempt current, because the
// platform prompt itself makes the app inactive: an attempt that completes
// after inactive alone still applies its result, so a success unlocks again.
func (s *ScreenLock) HandleLifecycle(sig Signal) {
	switch sig {
	case SignalInactive:
		if !s.cfg.LockOnBackground {
			return
		}
		s.mu.Lock()
		if s.disposed {
			s.mu.Unlock()
			return
		}
		changed := s.st.Unlocked
		s.st.Unlocked = false
		st := s.st
		s.mu.Unlock()
		if changed {
			s.notify(st)
		}
	case SignalBackground:
		if !s.cfg.LockOnBackground {
			return
		}
		s.mu.Lock()
		if s.inFlight {
			s.current = 0
		}
		s.mu.Unlock()
	case SignalActive:
		if !s.cfg.StartImmediately {
			return
		}
		if s.State().Unlocked {
			return
		}
		s.Authenticate()
	}
}

func (s *ScreenLock) notify(st ScreenState) {
	if s.onChange == nil {
		return
	}
	defer errors.Recover("lock.ScreenLock.onChange")
	s.onChange(st)
}

type unavailableAuth struct{}

func (unavailableAuth) CanAuthenticate() error {
	return fmt.Errorf("%w: no authenticator", ErrUnavailable)
}

func (unavailableAuth) Authenticate(_ string, done func(bool)) { done(false) }

func (unavailableAuth) BiometricKind() BiometricKind { return BiometricNone }
