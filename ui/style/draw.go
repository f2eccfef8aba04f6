package style

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillRect fills r on dst.
func FillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// StrokeRect outlines r on dst.
func StrokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// FillCircle fills a circle centered on (cx, cy).
func FillCircle(dst *ebiten.Image, cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, radius, clr, true)
}

// StrokeCircle outlines a circle centered on (cx, cy).
func StrokeCircle(dst *ebiten.Image, cx, cy, radius, width float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, radius, width, clr, true)
}

// Line draws a straight segment.
func Line(dst *ebiten.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

// FillRoundedRect fills r with corners rounded by radius. The corner discs
// overlap the body, so translucent colors double-blend there; callers pass
// opaque colors here and use FillRect for washes.
func FillRoundedRect(dst *ebiten.Image, r image.Rectangle, radius int, clr color.Color) {
	if radius <= 0 || r.Dx() < 2*radius || r.Dy() < 2*radius {
		FillRect(dst, r, clr)
		return
	}
	fr := float32(radius)
	FillRect(dst, image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Max.Y), clr)
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y+radius, r.Min.X+radius, r.Max.Y-radius), clr)
	FillRect(dst, image.Rect(r.Max.X-radius, r.Min.Y+radius, r.Max.X, r.Max.Y-radius), clr)
	FillCircle(dst, float32(r.Min.X+radius), float32(r.Min.Y+radius), fr, clr)
	FillCircle(dst, float32(r.Max.X-radius), float32(r.Min.Y+radius), fr, clr)
	FillCircle(dst, float32(r.Min.X+radius), float32(r.Max.Y-radius), fr, clr)
	FillCircle(dst, float32(r.Max.X-radius), float32(r.Max.Y-radius), fr, clr)
}

// DrawTrack paints a slider trough with the filled portion for value in
// [0, 1].
func DrawTrack(dst *ebiten.Image, r image.Rectangle, value float64) {
	FillRoundedRect(dst, r, 10, Track)
	fill := r
	fill.Max.X = r.Min.X + int(float64(r.Dx())*value)
	FillRoundedRect(dst, fill, 10, Accent)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawTextCentered draws s centered on (x, y).
func DrawTextCentered(dst *ebiten.Image, s string, face text.Face, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
