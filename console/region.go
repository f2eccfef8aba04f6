package console

import "image"

// RegionAt resolves point p to the logical region under it for the given
// content screen. It is a pure function of the static layout plus the
// catalog lengths.
//
// Some rectangles overlap by construction (the joy-con zone reaches under
// the left edge of the brightness track), so matching order is fixed:
// joy-con zone, profile button, the current screen's icon grid, sliders,
// home button, power button. First match wins.
func RegionAt(screen ScreenID, p image.Point) Region {
	if p.In(JoyconZoneRect()) {
		return Region{Kind: RegionJoyconZone}
	}
	if p.In(ProfileButtonRect()) {
		return Region{Kind: RegionProfileButton}
	}

	switch screen {
	case ScreenHome:
		for i := range HomeIcons {
			if p.In(HomeIconRect(i)) {
				return Region{Kind: RegionHomeIcon, Index: i}
			}
		}
	case ScreenSettings:
		for i := range SettingsIcons {
			if p.In(SettingsIconRect(i)) {
				return Region{Kind: RegionSettingsIcon, Index: i}
			}
		}
		if p.In(BrightnessSliderRect()) {
			return Region{Kind: RegionBrightnessSlider}
		}
	}

	if p.In(VolumeSliderRect()) {
		return Region{Kind: RegionVolumeSlider}
	}
	if p.In(HomeButtonRect()) {
		return Region{Kind: RegionHomeButton}
	}
	if p.In(PowerButtonRect()) {
		return Region{Kind: RegionPowerButton}
	}
	return Region{}
}
