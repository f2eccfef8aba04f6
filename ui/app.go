package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/capture"
	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui/screens"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// Config carries the startup options from main.
type Config struct {
	// IdleTimeout is how long without input before the console locks.
	// Zero means the default.
	IdleTimeout time.Duration

	// Verbose enables state machine debug logging.
	Verbose bool
}

// App is the main application struct that implements ebiten.Game.
// It owns the console state machine and translates between ebiten's
// input/render world and the machine's event/state world.
type App struct {
	machine    *console.Machine
	translator *Translator
	registry   *screens.Registry
	store      *capture.Store
	toast      *Toast

	// inner is the console screen framebuffer, drawn by the active
	// screen renderer and composited into the window each frame.
	inner *ebiten.Image

	// tick counts frames for screen animations
	tick int

	// Captures requested during Update, saved in Draw once the frame
	// content exists (set in Update, processed in Draw)
	pending []console.CaptureEntry
}

// NewApp creates the application and wires the state machine callbacks.
func NewApp(cfg Config) *App {
	app := &App{
		translator: NewTranslator(),
		store:      capture.NewMemStore(),
		toast:      NewToast(),
	}
	app.registry = screens.NewRegistry(app.store)

	app.machine = console.NewMachine(time.Now())
	if cfg.IdleTimeout > 0 {
		app.machine.SetIdleTimeout(cfg.IdleTimeout)
	}
	if cfg.Verbose {
		app.machine.Logf = log.Printf
	}
	app.machine.OnAction = func(action string) {
		log.Printf(">>> %s", action)
		app.toast.ShowShort(action)
	}
	app.machine.OnCapture = func(entry console.CaptureEntry) {
		app.pending = append(app.pending, entry)
	}

	return app
}

// Update implements ebiten.Game. It polls input, feeds the resulting
// events to the state machine, and advances the idle clock.
func (a *App) Update() error {
	now := time.Now()

	events, quit := a.translator.Poll()
	if quit {
		return ebiten.Termination
	}
	for _, ev := range events {
		a.machine.Apply(now, ev)
	}
	a.machine.Tick(now)

	a.tick++
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	dev := a.machine.Device()
	nav := a.machine.Nav()

	screen.Fill(style.Background)
	drawJoycons(screen, dev.JoyconsDetached)
	drawBezel(screen)

	if a.inner == nil {
		a.inner = ebiten.NewImage(console.ScreenW, console.ScreenH)
	}
	a.inner.Fill(style.ScreenBase)
	a.registry.Draw(a.inner, a.machine.EffectiveScreen(), screens.View{
		Device: dev,
		Nav:    nav,
		Album:  a.machine.Album(),
		Tick:   a.tick,
	})
	a.dimForBrightness(dev)

	op := &ebiten.DrawImageOptions{}
	origin := console.ScreenRect().Min
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	screen.DrawImage(a.inner, op)

	drawHUD(screen, dev, nav, time.Now().Format("15:04"))
	drawBottomBar(screen, dev)
	a.toast.Draw(screen)

	// Save captures after the frame content exists
	if len(a.pending) > 0 {
		a.flushCaptures()
	}
}

// dimForBrightness darkens the inner screen to match the brightness
// slider. Applied centrally so individual screens never deal with it.
func (a *App) dimForBrightness(dev console.DeviceState) {
	if !dev.PowerOn || dev.Brightness >= 1 {
		return
	}
	alpha := uint8(255 * (1 - dev.Brightness))
	if alpha == 0 {
		return
	}
	style.FillRect(a.inner, a.inner.Bounds(), color.NRGBA{A: alpha})
}

func (a *App) flushCaptures() {
	for _, entry := range a.pending {
		name, err := a.store.Save(entry.Seq, a.inner)
		if err != nil {
			log.Printf("capture save failed: %v", err)
			continue
		}
		short, _ := style.TruncateStart(name, 20)
		a.toast.ShowDefault(fmt.Sprintf("Saved %s", short))
	}
	a.pending = a.pending[:0]
}

// Layout implements ebiten.Game. The window renders at a fixed logical
// size regardless of the outer window dimensions.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return console.WindowW, console.WindowH
}
