package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"snake-canvas/audio"
	"snake-canvas/config"
	"snake-canvas/log"
	"snake-canvas/ui"
	"snake-canvas/ui/web"
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
			log.Warn("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	cfg := ui.NewConfig(settings)
	list := ui.NewDisplayList(cfg.CanvasSize())
	palette := ui.DefaultPalette()
	ctrl, err := ui.NewController(ui.ControllerOptions{
		Config:        cfg,
		Canvas:        list,
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

	game := web.NewGame(list, cfg, ctrl, palette)
	web.Export(game)

	ctrl.Start(time.Now())
	defer ctrl.Stop()

	ebiten.SetWindowSize(game.ScreenSize())
	ebiten.SetWindowTitle("Snake")
	if err := ebiten.RunGame(game); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
