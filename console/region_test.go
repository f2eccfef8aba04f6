package console

import (
	"image"
	"testing"
)

// TestRegionAt_OutsideAllRegions verifies dead points resolve to no region.
func TestRegionAt_OutsideAllRegions(t *testing.T) {
	points := []image.Point{
		{X: 5, Y: 60},    // left margin below the HUD
		{X: 110, Y: 60},  // right of the avatar, above the joy-con zone
		{X: 300, Y: 95},  // gap between the HUD and the grid
		{X: 175, Y: 125}, // gap between grid columns 0 and 1
		{X: 200, Y: 280}, // below the home grid (live only on settings)
		{X: 580, Y: 200}, // right edge, no zone on that side
		{X: 300, Y: 340}, // between the bezel and the bottom bar
		{X: 545, Y: 375}, // between the power button and the window edge
		{X: 0, Y: 399},   // bottom-left corner
	}
	for _, p := range points {
		if got := RegionAt(ScreenHome, p); got != (Region{}) {
			t.Errorf("RegionAt(home, %v): expected none, got %v", p, got)
		}
	}
}

// TestRegionAt_HomeIcons verifies every home cell resolves to its index and
// that cell bounds are min-inclusive, max-exclusive.
func TestRegionAt_HomeIcons(t *testing.T) {
	for i := range HomeIcons {
		r := HomeIconRect(i)
		got := RegionAt(ScreenHome, center(r))
		if got != (Region{Kind: RegionHomeIcon, Index: i}) {
			t.Errorf("icon %d center: expected HomeIcon(%d), got %v", i, i, got)
		}
	}

	if got := RegionAt(ScreenHome, image.Pt(100, 120)); got != (Region{Kind: RegionHomeIcon, Index: 0}) {
		t.Errorf("cell min corner: expected HomeIcon(0), got %v", got)
	}
	if got := RegionAt(ScreenHome, image.Pt(169, 189)); got != (Region{Kind: RegionHomeIcon, Index: 0}) {
		t.Errorf("cell inner max: expected HomeIcon(0), got %v", got)
	}
	if got := RegionAt(ScreenHome, image.Pt(170, 120)); got != (Region{}) {
		t.Errorf("cell max edge: expected none, got %v", got)
	}
}

// TestRegionAt_ScreenSelectsCatalog verifies the same point maps through
// whichever grid the current screen carries.
func TestRegionAt_ScreenSelectsCatalog(t *testing.T) {
	// Center of settings tile 0 sits inside home cell 0 as well.
	p := center(SettingsIconRect(0))
	if got := RegionAt(ScreenSettings, p); got != (Region{Kind: RegionSettingsIcon, Index: 0}) {
		t.Errorf("settings at %v: expected SettingsIcon(0), got %v", p, got)
	}
	if got := RegionAt(ScreenHome, p); got != (Region{Kind: RegionHomeIcon, Index: 0}) {
		t.Errorf("home at %v: expected HomeIcon(0), got %v", p, got)
	}

	// Center of home cell 7 sits inside settings tile 4.
	p = center(HomeIconRect(7))
	if got := RegionAt(ScreenHome, p); got != (Region{Kind: RegionHomeIcon, Index: 7}) {
		t.Errorf("home at %v: expected HomeIcon(7), got %v", p, got)
	}
	if got := RegionAt(ScreenSettings, p); got != (Region{Kind: RegionSettingsIcon, Index: 4}) {
		t.Errorf("settings at %v: expected SettingsIcon(4), got %v", p, got)
	}

	// Off their screens the grids are dead.
	if got := RegionAt(ScreenNews, p); got != (Region{}) {
		t.Errorf("news at %v: expected none, got %v", p, got)
	}
}

// TestRegionAt_PriorityOrder pins the resolution order where rectangles
// overlap by construction.
func TestRegionAt_PriorityOrder(t *testing.T) {
	// The joy-con zone reaches under the left end of the brightness track.
	p := image.Pt(95, 275)
	if !p.In(JoyconZoneRect()) || !p.In(BrightnessSliderRect()) {
		t.Fatalf("point %v no longer sits in both zone and track", p)
	}
	if got := RegionAt(ScreenSettings, p); got != (Region{Kind: RegionJoyconZone}) {
		t.Errorf("zone over track: expected JoyconZone, got %v", got)
	}

	// Settings tile 3 overlaps the top band of the brightness track.
	p = image.Pt(150, 280)
	if !p.In(SettingsIconRect(3)) || !p.In(BrightnessSliderRect()) {
		t.Fatalf("point %v no longer sits in both tile and track", p)
	}
	if got := RegionAt(ScreenSettings, p); got != (Region{Kind: RegionSettingsIcon, Index: 3}) {
		t.Errorf("tile over track: expected SettingsIcon(3), got %v", got)
	}
}

// TestRegionAt_ChromeOnEveryScreen verifies the HUD and bottom bar regions
// resolve identically on all content screens.
func TestRegionAt_ChromeOnEveryScreen(t *testing.T) {
	screens := []ScreenID{ScreenHome, ScreenSettings, ScreenNews, ScreenAlbum, ScreenGameChat}
	chrome := []struct {
		name string
		p    image.Point
		want Region
	}{
		{"profile", center(ProfileButtonRect()), Region{Kind: RegionProfileButton}},
		{"joycon zone", image.Pt(60, 200), Region{Kind: RegionJoyconZone}},
		{"volume", center(VolumeSliderRect()), Region{Kind: RegionVolumeSlider}},
		{"home button", center(HomeButtonRect()), Region{Kind: RegionHomeButton}},
		{"power button", center(PowerButtonRect()), Region{Kind: RegionPowerButton}},
	}
	for _, s := range screens {
		for _, c := range chrome {
			if got := RegionAt(s, c.p); got != c.want {
				t.Errorf("%s on %v: expected %v, got %v", c.name, s, c.want, got)
			}
		}
	}
}

// TestRegionAt_BrightnessTrackOnlyOnSettings verifies the track resolves on
// settings and nowhere else.
func TestRegionAt_BrightnessTrackOnlyOnSettings(t *testing.T) {
	p := image.Pt(190, 280)
	if got := RegionAt(ScreenSettings, p); got != (Region{Kind: RegionBrightnessSlider}) {
		t.Errorf("settings: expected BrightnessSlider, got %v", got)
	}
	for _, s := range []ScreenID{ScreenHome, ScreenNews, ScreenAlbum} {
		if got := RegionAt(s, p); got != (Region{}) {
			t.Errorf("%v: expected none, got %v", s, got)
		}
	}
}
