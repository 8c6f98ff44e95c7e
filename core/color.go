package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBYellow = RGB{255, 220, 60}
	RGBRed    = RGB{220, 50, 50}
	RGBGreen  = RGB{80, 200, 90}
	RGBCyan   = RGB{70, 200, 220}
	RGBGray   = RGB{128, 128, 128}
	RGBStone  = RGB{150, 140, 120}
	RGBFloor  = RGB{90, 90, 110}
	RGBMoss   = RGB{70, 130, 60}
	RGBBark   = RGB{120, 90, 50}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (revealed-but-unseen dimming)
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
