package screens

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/content"
	"github.com/zshcatsandevops/switchone/ui/style"
)

var kartColors = [4]color.NRGBA{
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
}

// gameRenderer draws the built-in kart demo. The sky gradient never
// changes, so it is baked into an offscreen image on first draw.
type gameRenderer struct {
	sky *ebiten.Image
}

func newGameRenderer() *gameRenderer {
	return &gameRenderer{}
}

func (g *gameRenderer) Draw(dst *ebiten.Image, v View) {
	if g.sky == nil {
		g.sky = renderSky(console.ScreenW, console.ScreenH)
	}
	dst.DrawImage(g.sky, nil)

	trackY := console.ScreenH - 80
	style.FillRect(dst, image.Rect(0, trackY, console.ScreenW, console.ScreenH), color.NRGBA{0x50, 0x50, 0x50, 0xff})
	for x := 0; x < console.ScreenW; x += 40 {
		style.FillRect(dst, image.Rect(x, trackY+35, x+25, trackY+43), color.NRGBA{0xff, 0xff, 0x00, 0xff})
	}

	t := float64(v.Tick) / 60
	for i := 0; i < 4; i++ {
		x := math.Mod(t*80+float64(i)*100, float64(console.ScreenW+100)) - 50
		y := float64(trackY-20) + 5*math.Sin(t*3+float64(i))
		drawKart(dst, x, y, kartColors[i])
	}

	style.DrawTextCentered(dst, content.DemoTitle, style.TitleFace(), console.ScreenW/2, 30, color.NRGBA{0xff, 0xdc, 0x00, 0xff})
}

func drawKart(dst *ebiten.Image, x, y float64, body color.NRGBA) {
	wheel := color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}
	style.FillRoundedRect(dst, image.Rect(int(x)+5, int(y)+5, int(x)+35, int(y)+25), 10, body)
	style.FillCircle(dst, float32(x)+10, float32(y)+25, 6, wheel)
	style.FillCircle(dst, float32(x)+30, float32(y)+25, 6, wheel)
}

// renderSky bakes the banded gradient backdrop, one hue sample per
// scanline around spring green.
func renderSky(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		hue := math.Mod(120+40*math.Sin(float64(y)/35)+360, 360)
		r, g, b := colorful.Hsv(hue, 0.55, 0.85).RGB255()
		c := color.NRGBA{R: r, G: g, B: b, A: 0xff}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
