package device

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"

	"github.com/go-drift/screenlock/pkg/lock"
)

const (
	localAuthChannel = "drift/local_auth"
	localAuthEvents  = "drift/local_auth/events"
)

// LocalAuth is the device authentication service (LocalAuthentication on iOS,
// BiometricPrompt with device credential fallback on Android).
var LocalAuth = NewLocalAuthService()

// LocalAuthService evaluates the device owner authentication policy through
// the drift/local_auth platform channel. It implements lock.Authenticator.
//
// The native side either answers "authenticate" with {"success": bool} or
// with {"pending": true} and later delivers
// {"requestId": n, "success": bool, "error": code} on drift/local_auth/events.
type LocalAuthService struct {
	channel *platform.MethodChannel
	events  *platform.EventChannel
	sub     *platform.Subscription

	// biometricType reports the enrolled biometric. Defaults to the secure
	// storage service, which already exposes it.
	biometricType func() (platform.BiometricType, error)

	nextID  atomic.Int64
	mu      sync.Mutex
	pending map[int64]func(bool)
}

// NewLocalAuthService creates a service bound to the local auth channels and
// starts listening for asynchronous results.
func NewLocalAuthService() *LocalAuthService {
	s := &LocalAuthService{
		channel:       platform.NewMethodChannel(localAuthChannel),
		events:        platform.NewEventChannel(localAuthEvents),
		biometricType: platform.SecureStorage.GetBiometricType,
		pending:       make(map[int64]func(bool)),
	}
	s.sub = s.events.Listen(platform.EventHandler{
		OnEvent: s.handleEvent,
		OnError: func(err error) {
			errors.Report(&errors.DriftError{
				Op:      "device.LocalAuth.streamError",
				Kind:    errors.KindPlatform,
				Channel: localAuthEvents,
				Err:     err,
			})
		},
		OnDone: s.failAll,
	})
	return s
}

// CanAuthenticate probes whether the device can evaluate the policy.
// Any failure wraps lock.ErrUnavailable.
func (s *LocalAuthService) CanAuthenticate() error {
	result, err := s.channel.Invoke("canAuthenticate", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", lock.ErrUnavailable, err)
	}
	m, ok := result.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: unexpected response %v", lock.ErrUnavailable, result)
	}
	if available, _ := m["available"].(bool); available {
		return nil
	}
	code, _ := m["error"].(string)
	if code == "" {
		code = ErrCodeNotAvailable
	}
	msg, _ := m["reason"].(string)
	return fmt.Errorf("%w: %w", lock.ErrUnavailable, &AuthError{Code: code, Message: msg})
}

// Authenticate prompts the user. done runs exactly once on the UI thread.
func (s *LocalAuthService) Authenticate(reason string, done func(success bool)) {
	id := s.nextID.Add(1)
	s.mu.Lock()
	s.pending[id] = done
	s.mu.Unlock()

	go func() {
		defer errors.RecoverWithCallback("device.LocalAuth.Authenticate", func(any) {
			s.resolve(id, false)
		})

		result, err := s.channel.Invoke("authenticate", map[string]any{
			"reason":    reason,
			"requestId": id,
		})
		if err != nil {
			errors.Report(&errors.DriftError{
				Op:      "device.LocalAuth.Authenticate",
				Kind:    errors.KindPlatform,
				Channel: localAuthChannel,
				Err:     err,
			})
			s.resolve(id, false)
			return
		}

		m, ok := result.(map[string]any)
		if !ok {
			s.reportParse(localAuthChannel, result)
			s.resolve(id, false)
			return
		}
		if success, ok := m["success"].(bool); ok {
			s.resolve(id, success)
			return
		}
		if pending, _ := m["pending"].(bool); pending {
			return
		}
		s.reportParse(localAuthChannel, result)
		s.resolve(id, false)
	}()
}

// BiometricKind reports the enrolled biometric, or lock.BiometricNone when
// it cannot be determined.
func (s *LocalAuthService) BiometricKind() lock.BiometricKind {
	kind, err := s.biometricType()
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:   "device.LocalAuth.BiometricKind",
			Kind: errors.KindPlatform,
			Err:  err,
		})
		return lock.BiometricNone
	}
	if kind == "" {
		return lock.BiometricNone
	}
	return lock.BiometricKind(kind)
}

// Close stops listening for asynchronous results and fails every outstanding
// attempt.
func (s *LocalAuthService) Close() {
	if s.sub != nil {
		s.sub.Cancel()
	}
	s.failAll()
}

// Pending returns the number of attempts awaiting a result.
func (s *LocalAuthService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *LocalAuthService) handleEvent(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		s.reportParse(localAuthEvents, data)
		return
	}
	id, ok := toInt64(m["requestId"])
	if !ok {
		s.reportParse(localAuthEvents, data)
		return
	}
	success, _ := m["success"].(bool)
	s.resolve(id, success)
}

// resolve completes attempt id once; later calls for the same id are dropped.
func (s *LocalAuthService) resolve(id int64, success bool) {
	s.mu.Lock()
	done, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if !ok || done == nil {
		return
	}
	run := func() {
		defer errors.Recover("device.LocalAuth.done")
		done(success)
	}
	if !platform.Dispatch(run) {
		run()
	}
}

// failAll fails every outstanding attempt when the event stream ends.
func (s *LocalAuthService) failAll() {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	for _, id := range ids {
		s.resolve(id, false)
	}
}

func (s *LocalAuthService) reportParse(channel string, got any) {
	errors.Report(&errors.DriftError{
		Op:      "device.LocalAuth.parse",
		Kind:    errors.KindParsing,
		Channel: channel,
		Err: &errors.ParseError{
			Channel:  channel,
			DataType: "LocalAuthResult",
			Got:      got,
		},
	})
}

// toInt64 converts the numeric types a codec may produce.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
