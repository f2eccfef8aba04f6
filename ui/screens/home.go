package screens

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// local converts a window-space rectangle to display-local coordinates.
func local(r image.Rectangle) image.Rectangle {
	return r.Sub(console.ScreenRect().Min)
}

// drawHome renders the icon grid. Cells come from the shared layout, so
// highlights land exactly on the clickable rectangles. The last column
// clips at the display edge.
func drawHome(dst *ebiten.Image, v View) {
	for i, ic := range console.HomeIcons {
		cell := local(console.HomeIconRect(i))
		cx := cell.Min.X + cell.Dx()/2

		style.FillRoundedRect(dst, cell, 12, tileColor(ic.Tint))
		style.DrawTextCentered(dst, ic.Glyph, style.GlyphFace(), cx, cell.Min.Y+26, style.Text)
		style.DrawTextCentered(dst, ic.Label, style.LabelFace(), cx, cell.Max.Y-13, style.Text)

		if v.Nav.Hovered == (console.Region{Kind: console.RegionHomeIcon, Index: i}) {
			style.FillRect(dst, cell, style.Highlight)
		}
		if v.Nav.SelectedIcon == i {
			style.StrokeRect(dst, cell, 4, style.Accent)
		}
	}
}

// tileColor halves an icon tint so the white glyph stays readable.
func tileColor(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 0xff}
}
