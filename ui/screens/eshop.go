package screens

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/content"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// drawEShop renders the storefront grid, three tiles per row.
func drawEShop(dst *ebiten.Image, v View) {
	style.DrawText(dst, "eShop", style.TitleFace(), style.TitleX, style.TitleY, style.Text)

	for i, item := range content.EShopItems {
		col := i % style.EShopCols
		row := i / style.EShopCols
		x := 20 + col*style.EShopTileStep
		y := 60 + row*style.EShopRowStep

		tile := image.Rect(x, y, x+style.EShopTileW, y+style.EShopTileH)
		style.FillRoundedRect(dst, tile, 10, style.Accent)

		name, _ := style.TruncateEnd(item.Name, 16)
		style.DrawTextCentered(dst, name, style.LabelFace(), x+style.EShopTileW/2, y+style.EShopTileH/2, style.HUD)
		style.DrawText(dst, item.Price, style.LabelFace(), x+10, y+style.EShopTileH+10, style.Text)
	}
}
