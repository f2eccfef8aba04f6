package screens

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zshcatsandevops/switchone/capture"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// albumRenderer shows captured screenshots as a thumbnail grid. Thumbnails
// decode lazily from the store and sit in a small LRU so revisiting the
// album does not re-decode every capture.
type albumRenderer struct {
	store *capture.Store
	tiles *lru.Cache[int, *ebiten.Image]
}

func newAlbumRenderer(store *capture.Store) *albumRenderer {
	tiles, _ := lru.New[int, *ebiten.Image](64) // errors only on size <= 0
	return &albumRenderer{store: store, tiles: tiles}
}

func (a *albumRenderer) Draw(dst *ebiten.Image, v View) {
	style.DrawText(dst, "Album", style.TitleFace(), style.TitleX, style.TitleY, style.Text)

	if len(v.Album) == 0 {
		style.DrawText(dst, "No captures yet. Press C to take one.", style.BodyFace(), style.BodyX, style.BodyY, style.TextDim)
		return
	}

	for i, entry := range v.Album {
		col := i % style.AlbumCols
		row := i / style.AlbumCols
		x := 20 + col*style.AlbumTileStep
		y := 60 + row*style.AlbumRowStep
		tile := image.Rect(x, y, x+style.AlbumTileW, y+style.AlbumTileH)

		if thumb := a.thumb(entry.Seq); thumb != nil {
			tb := thumb.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(x+(style.AlbumTileW-tb.Dx())/2),
				float64(y+(style.AlbumTileH-tb.Dy())/2),
			)
			dst.DrawImage(thumb, op)
		} else {
			style.FillRect(dst, tile, entry.Tint)
		}
		style.StrokeRect(dst, tile, 2, entry.Tint)
	}
}

// thumb returns the thumbnail for seq, decoding from the store on first
// use. Returns nil when the capture has not been flushed yet; the caller
// paints the tint instead and retries next frame.
func (a *albumRenderer) thumb(seq int) *ebiten.Image {
	if img, ok := a.tiles.Get(seq); ok {
		return img
	}
	src, err := a.store.Open(seq)
	if err != nil {
		return nil
	}
	img := style.ScaleImage(src, style.AlbumTileW, style.AlbumTileH)
	a.tiles.Add(seq, img)
	return img
}
