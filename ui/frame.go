package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// drawJoycons renders the controllers. Detached they float beside the
// display; the left capsule doubles as the reattach zone, so its rectangle
// comes from the shared layout.
func drawJoycons(screen *ebiten.Image, detached bool) {
	if !detached {
		sr := console.ScreenRect()
		style.FillRect(screen, image.Rect(sr.Min.X-40, sr.Min.Y, sr.Min.X, sr.Max.Y), style.JoyconLeft)
		style.FillRect(screen, image.Rect(sr.Max.X, sr.Min.Y, sr.Max.X+40, sr.Max.Y), style.JoyconRight)
		return
	}

	style.FillRoundedRect(screen, console.JoyconZoneRect(), 30, style.JoyconLeft)
	style.FillRoundedRect(screen, image.Rect(console.WindowW-100, 100, console.WindowW-20, 300), 30, style.JoyconRight)

	stick := color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}
	style.FillCircle(screen, 60, 180, 25, stick)
	style.FillCircle(screen, console.WindowW-60, 180, 25, stick)

	button := color.NRGBA{0x32, 0x32, 0x32, 0xff}
	for _, c := range []image.Point{
		{X: 35, Y: 140}, {X: 55, Y: 160}, {X: 75, Y: 140}, {X: 55, Y: 120},
		{X: console.WindowW - 75, Y: 140}, {X: console.WindowW - 55, Y: 160},
		{X: console.WindowW - 35, Y: 140}, {X: console.WindowW - 55, Y: 120},
	} {
		style.FillCircle(screen, float32(c.X), float32(c.Y), 10, button)
	}
}

// drawBezel renders the display housing. The panel content is drawn over
// the inner rounded rect afterwards.
func drawBezel(screen *ebiten.Image) {
	sr := console.ScreenRect()
	style.FillRoundedRect(screen, sr.Inset(-style.BezelMargin), style.BezelRadius+10, style.Bezel)
	style.FillRoundedRect(screen, sr, style.BezelRadius, style.ScreenDark)
}
