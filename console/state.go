package console

import (
	"image/color"
	"time"
)

// DeviceState holds the device-level switches and dials. It is owned by the
// Machine; renderers receive copies.
type DeviceState struct {
	PowerOn         bool
	Locked          bool
	LastActivity    time.Time
	Brightness      float64 // 0..1
	Volume          float64 // 0..1
	JoyconsDetached bool
}

// Slider identifies a draggable slider track.
type Slider int

const (
	SliderBrightness Slider = iota
	SliderVolume
)

// DragSession tracks an in-progress slider drag. The horizontal pointer
// position maps linearly onto the slider value, clamped at both ends of the
// track.
type DragSession struct {
	Slider  Slider
	OriginX int
	Width   int
}

// RegionKind classifies the clickable and hoverable areas of the window.
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionHomeIcon
	RegionSettingsIcon
	RegionProfileButton
	RegionBrightnessSlider
	RegionVolumeSlider
	RegionHomeButton
	RegionPowerButton
	RegionJoyconZone
)

func (k RegionKind) String() string {
	switch k {
	case RegionNone:
		return "none"
	case RegionHomeIcon:
		return "home-icon"
	case RegionSettingsIcon:
		return "settings-icon"
	case RegionProfileButton:
		return "profile-button"
	case RegionBrightnessSlider:
		return "brightness-slider"
	case RegionVolumeSlider:
		return "volume-slider"
	case RegionHomeButton:
		return "home-button"
	case RegionPowerButton:
		return "power-button"
	case RegionJoyconZone:
		return "joycon-zone"
	default:
		return "unknown"
	}
}

// Region is a hit-test result. Index is meaningful for the icon kinds only.
// The zero value means no region.
type Region struct {
	Kind  RegionKind
	Index int
}

// NavigationState holds the per-screen interaction state: which content
// screen is current, which icon was last activated, what the cursor is
// over, and any slider drag in progress.
type NavigationState struct {
	Current      ScreenID
	SelectedIcon int // -1 when nothing is selected
	Hovered      Region
	Drag         *DragSession
}

// CaptureEntry is one album capture. Seq increases by one per capture and
// never repeats within a run.
type CaptureEntry struct {
	Seq     int
	Tint    color.NRGBA
	TakenAt time.Time
}
