package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/lobber/audio"
	"github.com/lixenwraith/lobber/config"
	"github.com/lixenwraith/lobber/core"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/render"
	"github.com/lixenwraith/lobber/system"
	"github.com/lixenwraith/lobber/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lobber: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags returns pflag.ErrHelp for -h/--help after usage has been printed
func parseFlags(args []string) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("lobber", pflag.ContinueOnError)
	config.Flags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return fs, nil
}

func run() error {
	fs, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	path, _ := fs.GetString("config")
	cfg, err := config.Load(fs, path)
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().Interface("config", cfg).Msg("Starting")

	keys := input.DefaultKeyTable()
	if err := keys.Bind(cfg.Keys); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	window := terminal.NewWindow(screen, logger)
	if err := window.Init(); err != nil {
		return err
	}
	defer window.Fini()
	core.SetCrashHook(window.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var cues engine.CuePlayer
	if !cfg.NoAudio {
		c := audio.NewCues(cfg.Launch.PowerMin, logger)
		if err := c.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
		} else {
			cues = c
			defer c.Close()
		}
	}

	game, err := engine.NewGame(cfg, logger, window, cues)
	if err != nil {
		return err
	}
	system.RegisterSystems(game.World)
	game.Resize(window.Size())

	translator := terminal.NewTranslator(keys, game.Input, game.World.Resources.FocusSignal, cfg.Player.HoldFrames)
	renderer := render.NewRenderer(screen, render.ParseColorMode(cfg.Color, screen))

	events := make(chan tcell.Event, parameter.EventChannelSize)
	stop := make(chan struct{})
	defer close(stop)
	window.Pump(events, stop)

	timer := engine.NewFrameTimer(engine.NewTimeProvider(), parameter.MaxFrameDelta)
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for range ticker.C {
		// Apply everything the poller delivered since the last frame
	drain:
		for {
			select {
			case ev := <-events:
				out := translator.Apply(ev)
				if out.Quit {
					logger.Info().Int64("frames", game.World.Resources.Time.FrameNumber).Msg("Quit")
					return nil
				}
				if out.Resized {
					game.Resize(out.Width, out.Height)
					screen.Sync()
				}
			default:
				break drain
			}
		}

		game.Frame(timer.Tick())
		renderer.Draw(game.World)
	}
	return nil
}
