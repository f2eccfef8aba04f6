package screens

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// drawSettings renders the settings tiles and both device sliders. The
// brightness track is the draggable one; the volume row mirrors the
// bottom-bar control so the screen shows the live value.
func drawSettings(dst *ebiten.Image, v View) {
	style.DrawText(dst, "System Settings", style.TitleFace(), style.TitleX, style.TitleY, style.Text)

	tileBody := color.NRGBA{0x2d, 0x32, 0x3c, 0xff}
	for i, ic := range console.SettingsIcons {
		cell := local(console.SettingsIconRect(i))
		cx := cell.Min.X + cell.Dx()/2

		style.FillRoundedRect(dst, cell, 12, tileBody)
		style.DrawTextCentered(dst, ic.Glyph, style.GlyphFace(), cx, cell.Min.Y+26, style.Text)
		style.DrawTextCentered(dst, ic.Label, style.LabelFace(), cx, cell.Max.Y-13, style.Text)

		if v.Nav.Hovered == (console.Region{Kind: console.RegionSettingsIcon, Index: i}) {
			style.FillRect(dst, cell, style.Highlight)
		}
	}

	br := local(console.BrightnessSliderRect())
	style.DrawTrack(dst, br, v.Device.Brightness)
	style.DrawTrack(dst, br.Add(image.Pt(0, 30)), v.Device.Volume)
}
