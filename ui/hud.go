package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// drawHUD renders the top status bar: avatar, title, signal, battery, and
// clock. The avatar doubles as the profile button and lights its ring
// while hovered.
func drawHUD(screen *ebiten.Image, dev console.DeviceState, nav console.NavigationState, clock string) {
	style.FillRect(screen, image.Rect(0, 0, console.WindowW, style.HUDHeight), style.HUD)
	style.Line(screen, 0, style.HUDHeight, console.WindowW, style.HUDHeight, 1, style.Divider)

	pb := console.ProfileButtonRect()
	cx := float32(pb.Min.X+pb.Max.X) / 2
	cy := float32(pb.Min.Y+pb.Max.Y) / 2
	mark := color.NRGBA{0x28, 0x28, 0x28, 0xff}
	style.FillCircle(screen, cx, cy, 18, color.NRGBA{0x64, 0x64, 0x64, 0xff})
	style.FillCircle(screen, cx, cy-5, 6, mark)
	style.FillCircle(screen, cx, cy+9, 10, mark)
	if nav.Hovered == (console.Region{Kind: console.RegionProfileButton}) {
		style.StrokeCircle(screen, cx, cy, 18, 3, style.Accent)
	}

	style.DrawText(screen, "Switch One", style.TitleFace(), 65, 10, style.Text)

	for i := 0; i < 3; i++ {
		h := 8 + i*5
		x := 460 + i*8
		style.FillRect(screen, image.Rect(x, 32-h, x+5, 32), style.Text)
	}

	style.StrokeRect(screen, image.Rect(488, 18, 516, 30), 2, style.Text)
	style.FillRect(screen, image.Rect(516, 21, 519, 27), style.Text)
	charge, width := style.Accent, 22
	if !dev.PowerOn {
		charge, width = style.PowerOff, 10
	}
	style.FillRect(screen, image.Rect(491, 21, 491+width, 27), charge)

	style.DrawTextCentered(screen, clock, style.BodyFace(), 555, 25, style.Text)
}

// drawBottomBar renders the volume track and the home and power rings.
// Their rectangles come from the shared layout, so the rings sit exactly
// on their hit areas.
func drawBottomBar(screen *ebiten.Image, dev console.DeviceState) {
	barTop := console.WindowH - style.BarHeight
	style.FillRect(screen, image.Rect(0, barTop, console.WindowW, console.WindowH), style.HUD)
	style.Line(screen, 0, float32(barTop), console.WindowW, float32(barTop), 1, style.Divider)

	style.DrawTrack(screen, console.VolumeSliderRect(), dev.Volume)

	hb := console.HomeButtonRect()
	hx := float32(hb.Min.X+hb.Max.X) / 2
	hy := float32(hb.Min.Y+hb.Max.Y) / 2
	style.FillCircle(screen, hx, hy, 18, style.Track)
	style.StrokeCircle(screen, hx, hy, 18, 3, style.Accent)
	style.Line(screen, hx-8, hy+1, hx, hy-8, 2, style.Accent)
	style.Line(screen, hx, hy-8, hx+8, hy+1, 2, style.Accent)
	style.FillRect(screen, image.Rect(int(hx)-5, int(hy)+1, int(hx)+5, int(hy)+9), style.Accent)

	ring := style.PowerOn
	if !dev.PowerOn {
		ring = style.PowerOff
	}
	pwr := console.PowerButtonRect()
	px := float32(pwr.Min.X+pwr.Max.X) / 2
	py := float32(pwr.Min.Y+pwr.Max.Y) / 2
	style.FillCircle(screen, px, py, 18, color.NRGBA{0x28, 0x28, 0x28, 0xff})
	style.StrokeCircle(screen, px, py, 18, 3, ring)
	style.StrokeCircle(screen, px, py+1, 7, 2, ring)
	style.Line(screen, px, py-10, px, py-2, 2, ring)
}
