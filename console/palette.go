package console

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spaces consecutive capture tints far apart on the hue wheel
// so neighbouring album tiles stay distinguishable however many are taken.
const goldenAngle = 137.508

// captureTint returns the deterministic tile color for capture number seq.
func captureTint(seq int) color.NRGBA {
	h := math.Mod(float64(seq)*goldenAngle, 360)
	r, g, b := colorful.Hsv(h, 0.62, 0.92).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
