package lock

// Presentation is what a screen lock looks like for a given state.
type Presentation struct {
	// LockOpacity is the opacity of the whole lock view. It drops to 0 once
	// unlocked so the protected content shows through.
	LockOpacity float64
	// ControlsOpacity is the opacity of the title, description and button.
	// It stays 0 until the lock is revealed so a pending first attempt does
	// not flash the lock UI.
	ControlsOpacity float64
	// ShowUnlockButton reports whether the unlock button accepts taps.
	ShowUnlockButton bool
	// BlockInput reports whether the lock view absorbs pointer input.
	BlockInput bool
	// BlurSigma is the blur applied to the protected content, 0 for none.
	BlurSigma       float64
	BackgroundColor Color
	Title           string
	Description     string
}

// Present derives the presentation of a screen lock.
func Present(st ScreenState, bg Background) Presentation {
	p := Presentation{
		Title:       st.Title,
		Description: st.Description,
	}
	if st.Unlocked {
		return p
	}
	p.LockOpacity = 1
	p.BlockInput = true
	p.BlurSigma = bg.BlurAmount()
	p.BackgroundColor = bg.Color()
	if st.Revealed {
		p.ControlsOpacity = 1
		p.ShowUnlockButton = !st.Authenticating
	}
	return p
}

// OverlayPresentation is what a biometric lock overlay looks like.
type OverlayPresentation struct {
	// ShowOverlay reports whether the blocking unlock affordance is shown.
	ShowOverlay bool
	// ContentInteractive reports whether the wrapped content receives input.
	ContentInteractive bool
}

// PresentOverlay derives the presentation of an overlay.
func PresentOverlay(unlocked bool) OverlayPresentation {
	return OverlayPresentation{
		ShowOverlay:        !unlocked,
		ContentInteractive: unlocked,
	}
}
