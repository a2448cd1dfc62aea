package lockwidgets

import (
	"github.com/go-drift/drift/pkg/graphics"

	"github.com/go-drift/screenlock/pkg/device"
	"github.com/go-drift/screenlock/pkg/lock"
)

// Style controls the colors and text of the lock UIs.
// Zero fields fall back to DefaultStyle.
type Style struct {
	// TitleColor is used for titles and the overlay message.
	TitleColor graphics.Color
	// DescriptionColor is used for the screen lock description.
	DescriptionColor graphics.Color
	// ButtonColor and ButtonTextColor style the unlock button.
	ButtonColor     graphics.Color
	ButtonTextColor graphics.Color
	// OverlayColor and OverlayTextColor style the BiometricLock panel.
	OverlayColor     graphics.Color
	OverlayTextColor graphics.Color
	// UnlockLabel is the unlock button label.
	UnlockLabel string
}

// DefaultStyle returns the default lock styling: white on black for the
// overlay, dark text on the configured background for the screen lock.
func DefaultStyle() Style {
	return Style{
		TitleColor:       graphics.ColorBlack,
		DescriptionColor: graphics.RGB(0x6B, 0x6B, 0x70),
		ButtonColor:      graphics.ColorBlack,
		ButtonTextColor:  graphics.ColorWhite,
		OverlayColor:     graphics.ColorBlack,
		OverlayTextColor: graphics.ColorWhite,
		UnlockLabel:      "Unlock",
	}
}

func (s *Style) resolve() Style {
	d := DefaultStyle()
	if s == nil {
		return d
	}
	out := *s
	if out.TitleColor == 0 {
		out.TitleColor = d.TitleColor
	}
	if out.DescriptionColor == 0 {
		out.DescriptionColor = d.DescriptionColor
	}
	if out.ButtonColor == 0 {
		out.ButtonColor = d.ButtonColor
	}
	if out.ButtonTextColor == 0 {
		out.ButtonTextColor = d.ButtonTextColor
	}
	if out.OverlayColor == 0 {
		out.OverlayColor = d.OverlayColor
	}
	if out.OverlayTextColor == 0 {
		out.OverlayTextColor = d.OverlayTextColor
	}
	if out.UnlockLabel == "" {
		out.UnlockLabel = d.UnlockLabel
	}
	return out
}

func toColor(c lock.Color) graphics.Color {
	return graphics.Color(c)
}

func lifecycleOrDefault(n lock.LifecycleNotifier) lock.LifecycleNotifier {
	if n == nil {
		return device.Lifecycle
	}
	return n
}

func authOrDefault(a lock.Authenticator) lock.Authenticator {
	if a == nil {
		return device.LocalAuth
	}
	return a
}
