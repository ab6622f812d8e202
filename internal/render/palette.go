package render

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Color converts c to an opaque Color.
func (c RGB) Color() Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}

var Palette = struct {
	Background RGB
	Default    RGB // grid lines and the body while going
	Defeat     RGB
	Victory    RGB
	Food       RGB
}{
	Background: RGB{R: 73, G: 89, B: 81},
	Default:    RGB{R: 70, G: 70, B: 70},
	Defeat:     RGB{R: 255, G: 0, B: 0},
	Victory:    RGB{R: 0, G: 255, B: 0},
	Food:       RGB{R: 0x89, G: 0x01, B: 0x04},
}
