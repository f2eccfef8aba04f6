package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/ui"
)

func main() {
	scale := flag.Float64("scale", 1.0, "window scale factor")
	idle := flag.Duration("idle", console.DefaultIdleTimeout, "inactivity before the console locks")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	verbose := flag.Bool("verbose", false, "log ignored and unknown events")
	flag.Parse()

	app := ui.NewApp(ui.Config{
		IdleTimeout: *idle,
		Verbose:     *verbose,
	})

	ebiten.SetWindowSize(int(float64(console.WindowW)**scale), int(float64(console.WindowH)**scale))
	ebiten.SetWindowTitle("Switch One")
	ebiten.SetTPS(*tps)
	// Closing the window goes through the input translator as a quit
	// event instead of killing the process mid-frame
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
