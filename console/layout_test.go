package console

import (
	"image"
	"testing"
)

// TestGridCellRect_RowMajor verifies the row-major cell math against the
// home grid constants.
func TestGridCellRect_RowMajor(t *testing.T) {
	cases := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(100, 120, 170, 190)},
		{1, image.Rect(185, 120, 255, 190)},
		{5, image.Rect(525, 120, 595, 190)},
		{6, image.Rect(100, 205, 170, 275)},
		{7, image.Rect(185, 205, 255, 275)},
		{11, image.Rect(525, 205, 595, 275)},
	}
	for _, tc := range cases {
		if got := HomeIconRect(tc.index); got != tc.want {
			t.Errorf("HomeIconRect(%d): expected %v, got %v", tc.index, tc.want, got)
		}
	}
}

// TestSettingsIconRect verifies the 3-column settings grid placement.
func TestSettingsIconRect(t *testing.T) {
	cases := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(110, 150, 180, 220)},
		{2, image.Rect(290, 150, 360, 220)},
		{3, image.Rect(110, 240, 180, 310)},
		{4, image.Rect(200, 240, 270, 310)},
	}
	for _, tc := range cases {
		if got := SettingsIconRect(tc.index); got != tc.want {
			t.Errorf("SettingsIconRect(%d): expected %v, got %v", tc.index, tc.want, got)
		}
	}
}

// TestSliderTracks pins the two slider rectangles.
func TestSliderTracks(t *testing.T) {
	if got := BrightnessSliderRect(); got != image.Rect(90, 270, 290, 290) {
		t.Errorf("BrightnessSliderRect: expected (90,270)-(290,290), got %v", got)
	}
	if got := VolumeSliderRect(); got != image.Rect(60, 365, 160, 385) {
		t.Errorf("VolumeSliderRect: expected (60,365)-(160,385), got %v", got)
	}
}

// TestChromeRects pins the fixed chrome rectangles the renderers share with
// hit testing.
func TestChromeRects(t *testing.T) {
	if got := ScreenRect(); got != image.Rect(70, 70, 530, 330) {
		t.Errorf("ScreenRect: expected (70,70)-(530,330), got %v", got)
	}
	if got := ProfileButtonRect(); got != image.Rect(15, 5, 55, 45) {
		t.Errorf("ProfileButtonRect: expected (15,5)-(55,45), got %v", got)
	}
	if got := JoyconZoneRect(); got != image.Rect(20, 100, 100, 300) {
		t.Errorf("JoyconZoneRect: expected (20,100)-(100,300), got %v", got)
	}
	if got := HomeButtonRect(); got != image.Rect(257, 357, 293, 393) {
		t.Errorf("HomeButtonRect: expected (257,357)-(293,393), got %v", got)
	}
	if got := PowerButtonRect(); got != image.Rect(500, 355, 540, 395) {
		t.Errorf("PowerButtonRect: expected (500,355)-(540,395), got %v", got)
	}
}

// TestChromeRectsInsideWindow verifies no chrome rectangle leaks outside
// the window. Grid cells may clip past the inner display on the right, but
// never past the window.
func TestChromeRectsInsideWindow(t *testing.T) {
	window := image.Rect(0, 0, WindowW, WindowH)
	rects := map[string]image.Rectangle{
		"screen":     ScreenRect(),
		"profile":    ProfileButtonRect(),
		"joycon":     JoyconZoneRect(),
		"volume":     VolumeSliderRect(),
		"brightness": BrightnessSliderRect(),
		"home":       HomeButtonRect(),
		"power":      PowerButtonRect(),
	}
	for i := range HomeIcons {
		rects["home icon"] = HomeIconRect(i).Union(rects["home icon"])
	}
	for i := range SettingsIcons {
		rects["settings icon"] = SettingsIconRect(i).Union(rects["settings icon"])
	}
	for name, r := range rects {
		if !r.In(window) {
			t.Errorf("%s rect %v leaks outside the window", name, r)
		}
	}
}
