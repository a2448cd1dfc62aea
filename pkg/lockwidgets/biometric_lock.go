package lockwidgets

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/screenlock/pkg/lock"
)

// DefaultOverlayMessage is shown on the BiometricLock panel when Message is empty.
const DefaultOverlayMessage = "Use FaceID to unlock this view"

// BiometricLock always shows Child and covers it with an unlock panel while
// locked. Tapping the unlock button unlocks without calling the platform
// authenticator; use ScreenLock for an authenticated gate.
//
//	lockwidgets.BiometricLock{
//	    LockOnBackground: true,
//	    Child:            notesList,
//	}
//
// Unlocked and LockOnBackground are read once when the widget is mounted.
type BiometricLock struct {
	core.StatefulBase
	// Unlocked seeds the initial state.
	Unlocked bool
	// LockOnBackground re-locks when the app enters the background.
	LockOnBackground bool
	// Message is the text above the unlock button.
	Message string
	Style   *Style
	// Lifecycle defaults to device.Lifecycle.
	Lifecycle lock.LifecycleNotifier
	Child     core.Widget
}

func (b BiometricLock) CreateState() core.State {
	return &biometricLockState{}
}

type biometricLockState struct {
	core.StateBase
	overlay *lock.Overlay
}

func (s *biometricLockState) InitState() {
	w := s.Element().Widget().(BiometricLock)
	s.overlay = lock.NewOverlay(w.Unlocked, w.LockOnBackground,
		lock.WithOverlayChange(func(bool) { s.rebuild() }))
	s.overlay.Mount(lifecycleOrDefault(w.Lifecycle))
	s.OnDispose(s.overlay.Unmount)
}

// rebuild schedules a rebuild on the UI thread; lifecycle callbacks may
// arrive on the platform thread.
func (s *biometricLockState) rebuild() {
	if !platform.Dispatch(func() { s.SetState(nil) }) {
		s.SetState(nil)
	}
}

func (s *biometricLockState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(BiometricLock)
	return overlayView(lock.PresentOverlay(s.overlay.Unlocked()), w.Message, w.Style.resolve(), w.Child, s.overlay.Unlock)
}

// overlayView lays the unlock panel over child while locked.
func overlayView(p lock.OverlayPresentation, message string, st Style, child core.Widget, onUnlock func()) core.Widget {
	if message == "" {
		message = DefaultOverlayMessage
	}
	layers := []core.Widget{
		widgets.IgnorePointer{Ignoring: !p.ContentInteractive, Child: child},
	}
	if p.ShowOverlay {
		layers = append(layers, widgets.Container{
			Color: st.OverlayColor,
			Child: widgets.Column{
				MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				MainAxisSize:       widgets.MainAxisSizeMax,
				Children:           overlayControls(message, st, onUnlock),
			},
		})
	}
	return widgets.Stack{
		Children: layers,
		Fit:      widgets.StackFitExpand,
	}
}

func overlayControls(message string, st Style, onUnlock func()) []core.Widget {
	return []core.Widget{
		widgets.Text{
			Content: message,
			Style: graphics.TextStyle{
				Color:      st.OverlayTextColor,
				FontSize:   17,
				FontWeight: graphics.FontWeightSemibold,
			},
		},
		widgets.VSpace(50),
		widgets.Button{
			Label:        st.UnlockLabel,
			OnTap:        onUnlock,
			Color:        st.OverlayTextColor,
			TextColor:    st.OverlayColor,
			BorderRadius: 22,
			Haptic:       true,
		},
	}
}
