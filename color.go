package rfb

// Color is a color as three floating-point channels in [0.0, 1.0]. It's
// the conceptual input to PixelFormat.Encode; values outside the range are
// clamped wherever clamping is required (color-map entries).
type Color struct {
	R, G, B float64
}

// clamp01 restricts v to [0.0, 1.0].
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Clamp returns c with every channel restricted to [0.0, 1.0].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}
