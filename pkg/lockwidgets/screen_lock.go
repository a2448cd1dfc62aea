package lockwidgets

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/screenlock/pkg/lock"
)

// ScreenLock is a full-screen lock that authenticates the device owner.
//
// When Child is set, ScreenLock stacks itself over Child, blocks its input
// while locked and, for blur backgrounds, blurs it. Without Child it renders
// only the lock view and can be placed in a Stack by the caller.
//
//	lockwidgets.ScreenLock{
//	    Config: lock.Config{
//	        Title:            "Vault",
//	        LockOnBackground: true,
//	        StartImmediately: true,
//	        Background:       lock.Blur(12),
//	    },
//	    Child: vaultPage,
//	}
//
// Config, Authenticator and Lifecycle are read once when the widget is mounted.
type ScreenLock struct {
	core.StatefulBase
	Config lock.Config
	// Authenticator defaults to device.LocalAuth.
	Authenticator lock.Authenticator
	// Lifecycle defaults to device.Lifecycle.
	Lifecycle lock.LifecycleNotifier
	Style     *Style
	Child     core.Widget
}

func (l ScreenLock) CreateState() core.State {
	return &screenLockState{}
}

type screenLockState struct {
	core.StateBase
	lock *lock.ScreenLock
}

func (s *screenLockState) InitState() {
	w := s.Element().Widget().(ScreenLock)
	s.lock = lock.NewScreenLock(w.Config, authOrDefault(w.Authenticator),
		lock.WithChange(func(lock.ScreenState) { s.rebuild() }))
	s.OnDispose(s.lock.Unmount)
	s.lock.Mount(lifecycleOrDefault(w.Lifecycle))
}

func (s *screenLockState) rebuild() {
	if !platform.Dispatch(func() { s.SetState(nil) }) {
		s.SetState(nil)
	}
}

func (s *screenLockState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(ScreenLock)
	return screenLockView(s.lock.Presentation(), w.Style.resolve(), w.Child, func() { s.lock.Authenticate() })
}

// WithScreenLock gates child behind a ScreenLock when active is true and
// returns child unchanged otherwise.
func WithScreenLock(active bool, cfg lock.Config, child core.Widget) core.Widget {
	if !active {
		return child
	}
	return ScreenLock{Config: cfg, Child: child}
}

// screenLockView renders a presentation. The lock view fades out entirely
// once unlocked; its controls stay hidden until the lock is revealed.
func screenLockView(p lock.Presentation, st Style, child core.Widget, onUnlock func()) core.Widget {
	controls := widgets.Opacity{
		Opacity: p.ControlsOpacity,
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMax,
			Children:           lockControls(p, st, onUnlock),
		},
	}

	var view core.Widget = widgets.Stack{
		Children: []core.Widget{
			widgets.Container{Color: toColor(p.BackgroundColor)},
			controls,
		},
		Fit: widgets.StackFitExpand,
	}
	if p.BlurSigma > 0 {
		view = widgets.NewBackdropFilter(p.BlurSigma, view)
	}
	view = widgets.IgnorePointer{
		Ignoring: !p.BlockInput,
		Child:    widgets.Opacity{Opacity: p.LockOpacity, Child: view},
	}

	if child == nil {
		return view
	}
	return widgets.Stack{
		Children: []core.Widget{
			widgets.IgnorePointer{Ignoring: p.BlockInput, Child: child},
			view,
		},
		Fit: widgets.StackFitExpand,
	}
}

func lockControls(p lock.Presentation, st Style, onUnlock func()) []core.Widget {
	return []core.Widget{
		widgets.Text{
			Content: p.Title,
			Style: graphics.TextStyle{
				Color:      st.TitleColor,
				FontSize:   34,
				FontWeight: graphics.FontWeightBold,
			},
		},
		widgets.VSpace(30),
		widgets.Text{
			Content: p.Description,
			Style: graphics.TextStyle{
				Color:      st.DescriptionColor,
				FontSize:   17,
				FontWeight: graphics.FontWeightSemibold,
			},
		},
		widgets.VSpace(110),
		widgets.Button{
			Label:        st.UnlockLabel,
			OnTap:        onUnlock,
			Disabled:     !p.ShowUnlockButton,
			Color:        st.ButtonColor,
			TextColor:    st.ButtonTextColor,
			BorderRadius: 22,
			Haptic:       true,
		},
	}
}
