package main

import (
	"errors"
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-canvas/audio"
	"snake-canvas/config"
	"snake-canvas/log"
	"snake-canvas/ui"
	"snake-canvas/ui/desktop"
)

func main() {
	settings, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error("%v", err)
		os.Exit(2)
	}
	level, _ := log.ParseLogLevel(settings.LogLevel)
	log.SetLevel(level)

	var sounds ui.Sounds
	if settings.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Warn("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	cfg := ui.NewConfig(settings)
	canvas := ui.NewDisplayList(cfg.CanvasSize())
	palette := ui.DefaultPalette()
	ctrl, err := ui.NewController(ui.ControllerOptions{
		Config:        cfg,
		Canvas:        canvas,
		NewSimulation: ui.NewGameSimulation,
		SpawnIndex:    settings.SpawnIndex(time.Now()),
		InitialLength: settings.InitialLength,
		Palette:       palette,
		Sounds:        sounds,
	})
	if err != nil {
		log.Error("Failed to start game: %v", err)
		os.Exit(1)
	}

	renderer := desktop.NewRenderer(canvas, cfg, ctrl, palette)
	width, height := renderer.WindowSize()
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	ctrl.Start(time.Now())
	defer ctrl.Stop()

	for !rl.WindowShouldClose() {
		desktop.PollKeys(ctrl.Keyboard())
		ctrl.Frame(time.Now())
		renderer.Draw()
	}
}
