package console

import "image"

// Window and inner display geometry, in window pixels. Rendering and hit
// testing both derive their rectangles from these values, so highlights and
// click dispatch can never disagree.
const (
	WindowW = 600
	WindowH = 400

	ScreenW = 460
	ScreenH = 260
	ScreenX = (WindowW - ScreenW) / 2
	ScreenY = 70

	IconSize = 70

	HomeGridX       = ScreenX + 30
	HomeGridY       = ScreenY + 50
	HomeGridSpacing = 85
	HomeGridCols    = 6

	SettingsGridX       = ScreenX + 40
	SettingsGridY       = ScreenY + 80
	SettingsGridSpacing = 90
	SettingsGridCols    = 3

	BrightnessSliderW = 200
	VolumeSliderW     = 100
	SliderH           = 20
)

// ScreenRect is the inner display area.
func ScreenRect() image.Rectangle {
	return image.Rect(ScreenX, ScreenY, ScreenX+ScreenW, ScreenY+ScreenH)
}

// GridCellRect computes the cell rectangle for index i in a row-major grid:
// row = i/cols, col = i%cols.
func GridCellRect(originX, originY, spacing, cols, i int) image.Rectangle {
	row := i / cols
	col := i % cols
	x := originX + col*spacing
	y := originY + row*spacing
	return image.Rect(x, y, x+IconSize, y+IconSize)
}

// HomeIconRect is the window-space cell of home icon i.
func HomeIconRect(i int) image.Rectangle {
	return GridCellRect(HomeGridX, HomeGridY, HomeGridSpacing, HomeGridCols, i)
}

// SettingsIconRect is the window-space cell of settings icon i.
func SettingsIconRect(i int) image.Rectangle {
	return GridCellRect(SettingsGridX, SettingsGridY, SettingsGridSpacing, SettingsGridCols, i)
}

// BrightnessSliderRect is the brightness track on the settings screen.
func BrightnessSliderRect() image.Rectangle {
	return image.Rect(ScreenX+20, ScreenY+200, ScreenX+20+BrightnessSliderW, ScreenY+200+SliderH)
}

// VolumeSliderRect is the always-available volume track on the bottom bar.
func VolumeSliderRect() image.Rectangle {
	return image.Rect(60, WindowH-35, 60+VolumeSliderW, WindowH-35+SliderH)
}

// HomeButtonRect bounds the home ring on the bottom bar.
func HomeButtonRect() image.Rectangle {
	cx, cy := WindowW/2-25, WindowH-25
	return image.Rect(cx-18, cy-18, cx+18, cy+18)
}

// PowerButtonRect bounds the power ring on the bottom bar.
func PowerButtonRect() image.Rectangle {
	return image.Rect(WindowW-100, WindowH-45, WindowW-60, WindowH-5)
}

// ProfileButtonRect bounds the avatar in the HUD.
func ProfileButtonRect() image.Rectangle {
	return image.Rect(15, 5, 55, 45)
}

// JoyconZoneRect is the left joy-con area that reattaches the controllers.
func JoyconZoneRect() image.Rectangle {
	return image.Rect(20, 100, 100, 300)
}
