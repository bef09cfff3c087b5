package core

// RGB stores explicit 8-bit color channels, decoupled from any render backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBRed     = RGB{220, 50, 47}
	RGBOrange  = RGB{203, 75, 22}
	RGBYellow  = RGB{181, 137, 0}
	RGBGreen   = RGB{133, 153, 0}
	RGBCyan    = RGB{42, 161, 152}
	RGBBlue    = RGB{38, 139, 210}
	RGBMagenta = RGB{211, 54, 130}
)

// DefaultPalette returns the seven stock entity colors in a fresh slice
func DefaultPalette() []RGB {
	return []RGB{RGBRed, RGBOrange, RGBYellow, RGBGreen, RGBCyan, RGBBlue, RGBMagenta}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
