package console

import "image/color"

// Icon describes one home-menu tile. Target is the screen the tile opens.
type Icon struct {
	Glyph  string
	Label  string
	Target ScreenID
	Tint   color.NRGBA
}

// SettingsEntry describes one tile on the settings grid. Activating one
// only logs the action; the sliders below the grid carry the real controls.
type SettingsEntry struct {
	Glyph string
	Label string
}

// HomeIcons is the fixed home grid, laid out row-major across HomeGridCols
// columns. Hit testing iterates this catalog, so the grid size follows the
// catalog length.
var HomeIcons = []Icon{
	{Glyph: "G", Label: "Games", Target: ScreenGame, Tint: color.NRGBA{0xe6, 0x00, 0x12, 0xff}},
	{Glyph: "E", Label: "eShop", Target: ScreenEShop, Tint: color.NRGBA{0xff, 0x7f, 0x27, 0xff}},
	{Glyph: "A", Label: "Album", Target: ScreenAlbum, Tint: color.NRGBA{0x00, 0xb8, 0x9c, 0xff}},
	{Glyph: "S", Label: "Settings", Target: ScreenSettings, Tint: color.NRGBA{0x6b, 0x72, 0x80, 0xff}},
	{Glyph: "N", Label: "News", Target: ScreenNews, Tint: color.NRGBA{0x2d, 0x7d, 0xff, 0xff}},
	{Glyph: "P", Label: "Profile", Target: ScreenProfile, Tint: color.NRGBA{0x8e, 0x5b, 0xd8, 0xff}},
	{Glyph: "T", Label: "Themes", Target: ScreenThemes, Tint: color.NRGBA{0xe8, 0x5b, 0x8a, 0xff}},
	{Glyph: "S", Label: "Stats", Target: ScreenStats, Tint: color.NRGBA{0x3c, 0xb0, 0x43, 0xff}},
	{Glyph: "C", Label: "Controllers", Target: ScreenControllers, Tint: color.NRGBA{0x50, 0x64, 0xcd, 0xff}},
	{Glyph: "S", Label: "System", Target: ScreenSystem, Tint: color.NRGBA{0x46, 0x5a, 0x69, 0xff}},
	{Glyph: "D", Label: "Data", Target: ScreenData, Tint: color.NRGBA{0xd9, 0xa4, 0x1e, 0xff}},
	{Glyph: "H", Label: "Help", Target: ScreenHelp, Tint: color.NRGBA{0x1e, 0xb0, 0xd9, 0xff}},
}

// SettingsIcons is the settings grid, laid out row-major across
// SettingsGridCols columns.
var SettingsIcons = []SettingsEntry{
	{Glyph: "B", Label: "Brightness"},
	{Glyph: "V", Label: "Volume"},
	{Glyph: "B", Label: "Bluetooth"},
	{Glyph: "C", Label: "Calibration"},
	{Glyph: "I", Label: "Internet"},
}
