package style

// Chrome layout constants. Only decorative geometry lives here; anything
// clickable derives from the console package so hit testing and rendering
// cannot drift apart.
const (
	HUDHeight = 50
	BarHeight = 50

	BezelMargin = 10
	BezelRadius = 20

	// Screen-local content margins shared by the info screens.
	TitleX = 20
	TitleY = 20
	BodyX  = 20
	BodyY  = 60
	RowH   = 20
)

// Storefront and album tile geometry, screen local.
const (
	EShopTileW    = 120
	EShopTileH    = 120
	EShopTileStep = 150
	EShopRowStep  = 140
	EShopCols     = 3

	AlbumTileW    = 100
	AlbumTileH    = 80
	AlbumTileStep = 110
	AlbumRowStep  = 110
	AlbumCols     = 4
)
