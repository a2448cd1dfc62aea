package lock

import "fmt"

// MinBlur is the smallest blur amount a Background reports.
const MinBlur = 5.0

// DefaultReason is the prompt shown by the platform when Config.Reason is empty.
const DefaultReason = "Authentication is required to access sensitive data"

// Text shown once the platform reports that authentication cannot be evaluated.
const (
	UnavailableTitle       = "Authentication not possible"
	UnavailableDescription = "Please enable biometric authentication for this app in the settings"
)

// Color is a 32-bit ARGB color (0xAARRGGBB), the same layout used by Drift's
// rendering.Color.
type Color uint32

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)

// RGBA constructs a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

type backgroundKind int

const (
	backgroundColor backgroundKind = iota
	backgroundBlur
)

// Background is what sits behind the lock screen: either a blur of the
// protected content or a solid color.
//
// Use Blur or SolidColor to construct one. The zero value is a transparent
// solid color.
type Background struct {
	kind  backgroundKind
	blur  float64
	color Color
}

// Blur returns a Background that blurs the content behind the lock.
// Amounts below MinBlur are raised to MinBlur when read.
func Blur(amount float64) Background {
	return Background{kind: backgroundBlur, blur: amount}
}

// SolidColor returns a Background that paints an opaque color behind the lock.
func SolidColor(c Color) Background {
	return Background{kind: backgroundColor, color: c}
}

// IsBlur reports whether the background is a blur.
func (b Background) IsBlur() bool {
	return b.kind == backgroundBlur
}

// BlurAmount returns the effective blur amount, never less than MinBlur for a
// blur background. Solid colors report 0.
func (b Background) BlurAmount() float64 {
	if b.kind != backgroundBlur {
		return 0
	}
	if b.blur < MinBlur {
		return MinBlur
	}
	return b.blur
}

// Color returns the fill color. Blur backgrounds report ColorTransparent.
func (b Background) Color() Color {
	if b.kind == backgroundBlur {
		return ColorTransparent
	}
	return b.color
}

func (b Background) String() string {
	if b.kind == backgroundBlur {
		return fmt.Sprintf("blur(%g)", b.BlurAmount())
	}
	return fmt.Sprintf("color(%s)", b.color)
}

// BiometricKind is the authentication method the device reports.
// Values match Drift's platform.BiometricType.
type BiometricKind string

const (
	BiometricNone        BiometricKind = "none"
	BiometricTouchID     BiometricKind = "touch_id"
	BiometricFaceID      BiometricKind = "face_id"
	BiometricFingerprint BiometricKind = "fingerprint"
	BiometricFace        BiometricKind = "face"
)

// DefaultDescription returns the lock screen description used when none is
// configured.
func DefaultDescription(kind BiometricKind) string {
	switch kind {
	case BiometricTouchID:
		return "Use TouchID to unlock this screen"
	case BiometricFaceID:
		return "Use FaceID to unlock this screen"
	case BiometricFingerprint:
		return "Use your fingerprint to unlock this screen"
	case BiometricFace:
		return "Use face unlock to unlock this screen"
	default:
		return "Use your password to unlock this screen"
	}
}

// Config configures a ScreenLock. It is read once at construction.
type Config struct {
	// Title is the headline of the lock screen.
	Title string
	// Description is the secondary text. When empty it is derived from the
	// device's biometric kind.
	Description string
	// LockOnBackground re-locks the screen when the app becomes inactive.
	LockOnBackground bool
	// StartImmediately starts authentication on mount and whenever the app
	// becomes active while locked.
	StartImmediately bool
	// Background is painted behind the lock screen.
	Background Background
	// Reason is the prompt passed to the platform. Defaults to DefaultReason.
	Reason string
}

// DefaultConfig returns the configuration used by WithScreenLock when no
// options are given.
func DefaultConfig() Config {
	return Config{
		Title:            "Screen Locked",
		LockOnBackground: true,
		StartImmediately: true,
		Background:       SolidColor(ColorWhite),
		Reason:           DefaultReason,
	}
}

func (c Config) reason() string {
	if c.Reason == "" {
		return DefaultReason
	}
	return c.Reason
}
