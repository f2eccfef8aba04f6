package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/ui/style"
)

// drawLock renders the lock screen. Any press unlocks, so the hint covers
// the whole display.
func drawLock(dst *ebiten.Image, v View) {
	b := dst.Bounds()
	style.DrawTextCentered(dst, "Locked - Click to Unlock", style.TitleFace(), b.Dx()/2, b.Dy()/2, style.TextDim)
}

// drawOff blanks the display.
func drawOff(dst *ebiten.Image, v View) {
	dst.Fill(style.ScreenDark)
	b := dst.Bounds()
	style.DrawTextCentered(dst, "OFF", style.TitleFace(), b.Dx()/2, b.Dy()/2, style.Divider)
}
