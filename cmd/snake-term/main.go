package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-canvas/audio"
	"snake-canvas/config"
	"snake-canvas/log"
	"snake-canvas/ui"
	"snake-canvas/ui/terminal"
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

	// The screen owns the terminal, so logs go to a file.
	logPath := filepath.Join(os.TempDir(), "snake-term.log")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(settings); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
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
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl.Start(time.Now())
	defer ctrl.Stop()
	return terminal.NewHost(screen, list, cfg, ctrl, palette).Run(ctx)
}
