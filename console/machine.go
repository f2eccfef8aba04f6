// Package console implements the navigation engine of the simulated
// handheld: device power and lock state, screen navigation, hover and drag
// tracking, and the shared hit-region geometry. Rendering lives elsewhere;
// this package only decides what state the display should show.
package console

import (
	"image"
	"time"
)

// DefaultIdleTimeout is how long the device stays interactive without any
// input before it locks itself.
const DefaultIdleTimeout = 30 * time.Second

// Machine owns all mutable device and navigation state. It is not safe for
// concurrent use: the frame loop applies events and ticks from a single
// goroutine, and renderers read snapshots between frames.
type Machine struct {
	dev DeviceState
	nav NavigationState

	idleTimeout time.Duration
	powerArmed  bool

	album      []CaptureEntry
	captureSeq int

	// OnAction, when set, receives one line per user-visible action
	// (navigation, unlock, power, capture). Informational only.
	OnAction func(msg string)

	// OnCapture, when set, is called for every album entry the capture key
	// appends.
	OnCapture func(entry CaptureEntry)

	// Logf, when set, receives diagnostics about ignored events. Never
	// called on the happy path.
	Logf func(format string, args ...any)
}

// NewMachine returns a powered-on, unlocked machine showing the home
// screen. now seeds the idle timer.
func NewMachine(now time.Time) *Machine {
	return &Machine{
		dev: DeviceState{
			PowerOn:         true,
			LastActivity:    now,
			Brightness:      1.0,
			Volume:          0.7,
			JoyconsDetached: true,
		},
		nav: NavigationState{
			Current:      ScreenHome,
			SelectedIcon: -1,
		},
		idleTimeout: DefaultIdleTimeout,
	}
}

// SetIdleTimeout overrides the auto-lock threshold. Zero or negative
// disables auto-lock.
func (m *Machine) SetIdleTimeout(d time.Duration) {
	m.idleTimeout = d
}

// Device returns a copy of the device state.
func (m *Machine) Device() DeviceState {
	return m.dev
}

// Nav returns a copy of the navigation state.
func (m *Machine) Nav() NavigationState {
	return m.nav
}

// Album returns the captures in append order. Callers must not mutate the
// returned slice.
func (m *Machine) Album() []CaptureEntry {
	return m.album
}

// EffectiveScreen maps machine state to the view the display shows: off
// when powered down, the lock screen while locked, otherwise the current
// content screen.
func (m *Machine) EffectiveScreen() ScreenID {
	switch {
	case !m.dev.PowerOn:
		return ScreenOff
	case m.dev.Locked:
		return ScreenLock
	default:
		return m.nav.Current
	}
}

// Apply consumes one abstract input event. now is the clock sample taken at
// frame start; every event counts as activity for the idle timer. Events
// that match no transition for the current state are ignored.
func (m *Machine) Apply(now time.Time, ev Event) {
	m.dev.LastActivity = now

	switch ev.Kind {
	case EventPointerMove:
		m.pointerMove(ev.Pos)
	case EventPointerDown, EventPointerClick:
		m.pointerPress(ev.Pos)
	case EventPointerUp:
		m.pointerRelease(ev.Pos)
	case EventKeyPress:
		m.keyPress(now, ev.Key)
	default:
		m.logf("ignoring event of unknown kind %d", ev.Kind)
	}
}

// Tick runs the once-per-frame idle check. Call it after the frame's events
// have been applied.
func (m *Machine) Tick(now time.Time) {
	if !m.dev.PowerOn || m.dev.Locked || m.idleTimeout <= 0 {
		return
	}
	if now.Sub(m.dev.LastActivity) >= m.idleTimeout {
		m.dev.Locked = true
		m.dev.LastActivity = now
		m.logf("idle for %v, locking", m.idleTimeout)
	}
}

func (m *Machine) pointerMove(p image.Point) {
	if !m.dev.PowerOn {
		return
	}
	if d := m.nav.Drag; d != nil {
		v := clamp01(float64(p.X-d.OriginX) / float64(d.Width))
		switch d.Slider {
		case SliderBrightness:
			m.dev.Brightness = v
		case SliderVolume:
			m.dev.Volume = v
		}
		return
	}
	if m.dev.Locked {
		return
	}
	m.nav.Hovered = RegionAt(m.nav.Current, p)
}

func (m *Machine) pointerPress(p image.Point) {
	if !m.dev.PowerOn {
		// Only the power button reacts while off.
		if p.In(PowerButtonRect()) {
			m.powerArmed = true
		}
		return
	}
	if m.dev.Locked {
		// Unlocking swallows the press; no hit testing for this event.
		m.dev.Locked = false
		m.action("Unlocked")
		return
	}

	r := RegionAt(m.nav.Current, p)
	switch r.Kind {
	case RegionJoyconZone:
		if !m.dev.JoyconsDetached {
			m.logf("joy-con zone pressed while attached, ignoring")
			return
		}
		m.dev.JoyconsDetached = false
		m.action("Joy-Cons attached")
	case RegionProfileButton:
		m.setScreen(ScreenProfile)
		m.action("Profile opened")
	case RegionHomeIcon:
		ic := HomeIcons[r.Index]
		m.setScreen(ic.Target)
		m.nav.SelectedIcon = r.Index
		m.action(ic.Label + " selected")
	case RegionSettingsIcon:
		m.action("Settings: " + SettingsIcons[r.Index].Label + " selected")
	case RegionBrightnessSlider:
		tr := BrightnessSliderRect()
		m.nav.Drag = &DragSession{Slider: SliderBrightness, OriginX: tr.Min.X, Width: tr.Dx()}
	case RegionVolumeSlider:
		tr := VolumeSliderRect()
		m.nav.Drag = &DragSession{Slider: SliderVolume, OriginX: tr.Min.X, Width: tr.Dx()}
	case RegionHomeButton:
		m.setScreen(ScreenHome)
		m.action("Home")
	case RegionPowerButton:
		m.powerArmed = true
	}
}

func (m *Machine) pointerRelease(p image.Point) {
	m.nav.Drag = nil
	if !m.powerArmed {
		return
	}
	m.powerArmed = false
	if !p.In(PowerButtonRect()) {
		return
	}
	if m.dev.PowerOn {
		m.dev.PowerOn = false
		m.dev.Locked = false
		m.action("Power off")
	} else {
		m.dev.PowerOn = true
		m.action("Power on")
	}
}

func (m *Machine) keyPress(now time.Time, k Key) {
	if k != KeyCapture {
		m.logf("ignoring key %d", k)
		return
	}
	if !m.dev.PowerOn || m.dev.Locked {
		return
	}
	entry := CaptureEntry{
		Seq:     m.captureSeq,
		Tint:    captureTint(m.captureSeq),
		TakenAt: now,
	}
	m.captureSeq++
	m.album = append(m.album, entry)
	m.action("Screenshot captured")
	if m.OnCapture != nil {
		m.OnCapture(entry)
	}
}

// setScreen transitions to s and resets the per-screen interaction state.
// Lock and power changes do not go through here, so selection and hover
// survive a lock or power round trip.
func (m *Machine) setScreen(s ScreenID) {
	m.nav.Current = s
	m.nav.SelectedIcon = -1
	m.nav.Hovered = Region{}
}

func (m *Machine) action(msg string) {
	if m.OnAction != nil {
		m.OnAction(msg)
	}
}

func (m *Machine) logf(format string, args ...any) {
	if m.Logf != nil {
		m.Logf(format, args...)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
