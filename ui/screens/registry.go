// Package screens renders each console view onto the inner display.
// Renderers draw in display-local coordinates and never mutate machine
// state; the frame loop hands each one a fresh snapshot per frame.
package screens

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/capture"
	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// View is the per-frame snapshot a renderer draws from.
type View struct {
	Device console.DeviceState
	Nav    console.NavigationState
	Album  []console.CaptureEntry

	// Tick counts frames since startup and drives the demo animations.
	Tick int
}

// Renderer draws one screen onto the inner display image. dst is display
// local: (0,0) is the panel's top-left corner.
type Renderer interface {
	Draw(dst *ebiten.Image, v View)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(dst *ebiten.Image, v View)

// Draw implements Renderer.
func (f RendererFunc) Draw(dst *ebiten.Image, v View) { f(dst, v) }

// Registry maps every screen id to its renderer. Ids without an entry fall
// back to a diagnostic card so a wiring mistake shows on screen instead of
// blanking the display.
type Registry struct {
	renderers map[console.ScreenID]Renderer
	fallback  Renderer
	warned    map[console.ScreenID]bool
}

// NewRegistry builds the full screen table. store backs the album
// thumbnails.
func NewRegistry(store *capture.Store) *Registry {
	return &Registry{
		renderers: map[console.ScreenID]Renderer{
			console.ScreenHome:        RendererFunc(drawHome),
			console.ScreenGame:        newGameRenderer(),
			console.ScreenEShop:       RendererFunc(drawEShop),
			console.ScreenAlbum:       newAlbumRenderer(store),
			console.ScreenSettings:    RendererFunc(drawSettings),
			console.ScreenNews:        RendererFunc(drawNews),
			console.ScreenProfile:     RendererFunc(drawProfile),
			console.ScreenThemes:      RendererFunc(drawThemes),
			console.ScreenStats:       RendererFunc(drawStats),
			console.ScreenControllers: RendererFunc(drawControllers),
			console.ScreenSystem:      RendererFunc(drawSystem),
			console.ScreenData:        RendererFunc(drawData),
			console.ScreenHelp:        RendererFunc(drawHelp),
			console.ScreenGameChat:    RendererFunc(drawGameChat),
			console.ScreenLock:        RendererFunc(drawLock),
			console.ScreenOff:         RendererFunc(drawOff),
		},
		fallback: RendererFunc(drawMissing),
		warned:   make(map[console.ScreenID]bool),
	}
}

// Renderer returns the renderer registered for id.
func (r *Registry) Renderer(id console.ScreenID) (Renderer, bool) {
	ren, ok := r.renderers[id]
	return ren, ok
}

// Draw dispatches to the screen's renderer.
func (r *Registry) Draw(dst *ebiten.Image, id console.ScreenID, v View) {
	ren, ok := r.renderers[id]
	if !ok {
		if !r.warned[id] {
			r.warned[id] = true
			log.Printf("no renderer for screen %v, using fallback", id)
		}
		r.fallback.Draw(dst, v)
		return
	}
	ren.Draw(dst, v)
}

func drawMissing(dst *ebiten.Image, v View) {
	b := dst.Bounds()
	style.DrawTextCentered(dst, "No renderer for this screen", style.BodyFace(), b.Dx()/2, b.Dy()/2, style.TextDim)
}
