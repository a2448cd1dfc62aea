package lockwidgets

import (
	"testing"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/screenlock/pkg/device"
	"github.com/go-drift/screenlock/pkg/lock"
)

func TestStyle_Resolve(t *testing.T) {
	var nilStyle *Style
	if got := nilStyle.resolve(); got != DefaultStyle() {
		t.Errorf("nil style resolved to %+v, want defaults", got)
	}

	custom := &Style{ButtonColor: graphics.RGB(0x12, 0x34, 0x56), UnlockLabel: "Open"}
	got := custom.resolve()
	if got.ButtonColor != graphics.RGB(0x12, 0x34, 0x56) {
		t.Errorf("ButtonColor = %v, want custom color", got.ButtonColor)
	}
	if got.UnlockLabel != "Open" {
		t.Errorf("UnlockLabel = %q, want %q", got.UnlockLabel, "Open")
	}
	if got.TitleColor != DefaultStyle().TitleColor {
		t.Errorf("TitleColor = %v, want default", got.TitleColor)
	}
	if custom.TitleColor != 0 {
		t.Error("resolve must not modify the receiver")
	}
}

func TestDefaults(t *testing.T) {
	if lifecycleOrDefault(nil) != lock.LifecycleNotifier(device.Lifecycle) {
		t.Error("nil lifecycle should fall back to device.Lifecycle")
	}
	if authOrDefault(nil) != lock.Authenticator(device.LocalAuth) {
		t.Error("nil authenticator should fall back to device.LocalAuth")
	}
	if toColor(lock.RGBA(1, 2, 3, 4)) != graphics.RGBA8(1, 2, 3, 4) {
		t.Error("toColor should preserve ARGB layout")
	}
}

func TestWithScreenLock(t *testing.T) {
	child := widgets.Text{Content: "secret"}

	if got, ok := WithScreenLock(false, lock.DefaultConfig(), child).(widgets.Text); !ok || got.Content != "secret" {
		t.Errorf("inactive WithScreenLock should return child, got %T", got)
	}

	cfg := lock.DefaultConfig()
	cfg.Title = "Vault"
	sl, ok := WithScreenLock(true, cfg, child).(ScreenLock)
	if !ok {
		t.Fatal("active WithScreenLock should return a ScreenLock")
	}
	if sl.Config.Title != "Vault" {
		t.Errorf("Config.Title = %q, want %q", sl.Config.Title, "Vault")
	}
	if c, ok := sl.Child.(widgets.Text); !ok || c.Content != "secret" {
		t.Error("ScreenLock should wrap the child")
	}
}

func buttonIn(t *testing.T, ws []core.Widget) widgets.Button {
	t.Helper()
	for _, w := range ws {
		if b, ok := w.(widgets.Button); ok {
			return b
		}
	}
	t.Fatal("no button found")
	return widgets.Button{}
}

func textsIn(ws []core.Widget) []string {
	var out []string
	for _, w := range ws {
		if txt, ok := w.(widgets.Text); ok {
			out = append(out, txt.Content)
		}
	}
	return out
}

func TestOverlayView(t *testing.T) {
	st := DefaultStyle()
	child := widgets.Text{Content: "notes"}

	t.Run("locked", func(t *testing.T) {
		stack, ok := overlayView(lock.PresentOverlay(false), "", st, child, func() {}).(widgets.Stack)
		if !ok {
			t.Fatal("expected a Stack")
		}
		if len(stack.Children) != 2 {
			t.Fatalf("expected content and overlay, got %d layers", len(stack.Children))
		}
		ip, ok := stack.Children[0].(widgets.IgnorePointer)
		if !ok || !ip.Ignoring {
			t.Error("locked content should ignore pointer input")
		}
		panel, ok := stack.Children[1].(widgets.Container)
		if !ok {
			t.Fatalf("expected overlay Container, got %T", stack.Children[1])
		}
		if panel.Color != st.OverlayColor {
			t.Errorf("overlay color = %v, want %v", panel.Color, st.OverlayColor)
		}
	})

	t.Run("unlocked", func(t *testing.T) {
		stack := overlayView(lock.PresentOverlay(true), "", st, child, func() {}).(widgets.Stack)
		if len(stack.Children) != 1 {
			t.Fatalf("expected only content, got %d layers", len(stack.Children))
		}
		if ip := stack.Children[0].(widgets.IgnorePointer); ip.Ignoring {
			t.Error("unlocked content should receive input")
		}
	})
}

func TestOverlayControls(t *testing.T) {
	tapped := false
	ws := overlayControls(DefaultOverlayMessage, DefaultStyle(), func() { tapped = true })

	if got := textsIn(ws); len(got) != 1 || got[0] != DefaultOverlayMessage {
		t.Errorf("texts = %v, want [%q]", got, DefaultOverlayMessage)
	}
	b := buttonIn(t, ws)
	if b.Label != "Unlock" {
		t.Errorf("button label = %q, want Unlock", b.Label)
	}
	b.OnTap()
	if !tapped {
		t.Error("button tap should unlock")
	}
}

func TestScreenLockView(t *testing.T) {
	st := DefaultStyle()
	child := widgets.Text{Content: "vault"}

	tests := []struct {
		name       string
		state      lock.ScreenState
		bg         lock.Background
		wantBlock  bool
		wantBlur   bool
		wantOpaque float64
	}{
		{
			name:       "locked with blur",
			state:      lock.ScreenState{Revealed: true},
			bg:         lock.Blur(2),
			wantBlock:  true,
			wantBlur:   true,
			wantOpaque: 1,
		},
		{
			name:       "locked with color",
			state:      lock.ScreenState{Revealed: true},
			bg:         lock.SolidColor(lock.ColorWhite),
			wantBlock:  true,
			wantOpaque: 1,
		},
		{
			name:       "unlocked",
			state:      lock.ScreenState{Unlocked: true, Revealed: true},
			bg:         lock.Blur(10),
			wantOpaque: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lock.Present(tt.state, tt.bg)
			stack, ok := screenLockView(p, st, child, func() {}).(widgets.Stack)
			if !ok {
				t.Fatal("expected a Stack when a child is set")
			}
			if len(stack.Children) != 2 {
				t.Fatalf("expected content and lock view, got %d layers", len(stack.Children))
			}
			content := stack.Children[0].(widgets.IgnorePointer)
			if content.Ignoring != tt.wantBlock {
				t.Errorf("content Ignoring = %v, want %v", content.Ignoring, tt.wantBlock)
			}

			view := stack.Children[1].(widgets.IgnorePointer)
			if view.Ignoring == tt.wantBlock {
				t.Errorf("lock view Ignoring = %v, want %v", view.Ignoring, !tt.wantBlock)
			}
			fade := view.Child.(widgets.Opacity)
			if fade.Opacity != tt.wantOpaque {
				t.Errorf("lock opacity = %v, want %v", fade.Opacity, tt.wantOpaque)
			}
			bf, blurred := fade.Child.(widgets.BackdropFilter)
			if blurred != tt.wantBlur {
				t.Fatalf("blurred = %v, want %v", blurred, tt.wantBlur)
			}
			if blurred && bf.SigmaX != lock.MinBlur {
				t.Errorf("blur sigma = %v, want floor %v", bf.SigmaX, lock.MinBlur)
			}
		})
	}
}

func TestScreenLockView_NoChild(t *testing.T) {
	p := lock.Present(lock.ScreenState{}, lock.SolidColor(lock.ColorBlack))
	view, ok := screenLockView(p, DefaultStyle(), nil, func() {}).(widgets.IgnorePointer)
	if !ok {
		t.Fatal("without a child the lock view is returned directly")
	}
	inner := view.Child.(widgets.Opacity).Child.(widgets.Stack)
	bg := inner.Children[0].(widgets.Container)
	if bg.Color != graphics.ColorBlack {
		t.Errorf("background = %v, want black", bg.Color)
	}
	controls := inner.Children[1].(widgets.Opacity)
	if controls.Opacity != 0 {
		t.Errorf("controls opacity = %v, want 0 before reveal", controls.Opacity)
	}
}

func TestLockControls(t *testing.T) {
	calls := 0
	onUnlock := func() { calls++ }

	tests := []struct {
		name         string
		state        lock.ScreenState
		wantDisabled bool
	}{
		{"revealed", lock.ScreenState{Revealed: true}, false},
		{"authenticating", lock.ScreenState{Revealed: true, Authenticating: true}, true},
		{"hidden", lock.ScreenState{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.state.Title = "Screen Locked"
			tt.state.Description = "Unlock with Face ID to open"
			p := lock.Present(tt.state, lock.Blur(5))
			ws := lockControls(p, DefaultStyle(), onUnlock)

			texts := textsIn(ws)
			if len(texts) != 2 || texts[0] != "Screen Locked" || texts[1] != "Unlock with Face ID to open" {
				t.Errorf("texts = %v", texts)
			}
			if b := buttonIn(t, ws); b.Disabled != tt.wantDisabled {
				t.Errorf("Disabled = %v, want %v", b.Disabled, tt.wantDisabled)
			}
		})
	}

	buttonIn(t, lockControls(lock.Presentation{ShowUnlockButton: true}, DefaultStyle(), onUnlock)).OnTap()
	if calls != 1 {
		t.Errorf("unlock calls = %d, want 1", calls)
	}
}

func TestViewTrees(t *testing.T) {
	st := DefaultStyle()

	p := lock.Present(lock.ScreenState{Revealed: true, Title: "Locked"}, lock.SolidColor(lock.ColorWhite))
	view := screenLockView(p, st, nil, func() {}).(widgets.IgnorePointer)
	inner := view.Child.(widgets.Opacity).Child.(widgets.Stack)
	col, ok := inner.Children[1].(widgets.Opacity).Child.(widgets.Column)
	if !ok {
		t.Fatalf("controls should be a Column, got %T", inner.Children[1].(widgets.Opacity).Child)
	}
	if col.MainAxisAlignment != widgets.MainAxisAlignmentCenter {
		t.Errorf("controls alignment = %v, want centered", col.MainAxisAlignment)
	}
	if len(col.Children) != len(lockControls(p, st, nil)) {
		t.Errorf("controls has %d children", len(col.Children))
	}
	title := col.Children[0].(widgets.Text)
	if title.Wrap != graphics.TextWrapWrap {
		t.Errorf("title wrap = %v, want wrap", title.Wrap)
	}
	if title.Style.Color != st.TitleColor {
		t.Errorf("title color = %v, want %v", title.Style.Color, st.TitleColor)
	}

	stack := overlayView(lock.PresentOverlay(false), "", st, nil, func() {}).(widgets.Stack)
	panel := stack.Children[1].(widgets.Container)
	panelCol, ok := panel.Child.(widgets.Column)
	if !ok {
		t.Fatalf("overlay panel child should be a Column, got %T", panel.Child)
	}
	if got := textsIn(panelCol.Children); len(got) != 1 || got[0] != DefaultOverlayMessage {
		t.Errorf("overlay texts = %v", got)
	}
}
