package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcast/audio"
	"github.com/lixenwraith/blockcast/config"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/core"
	"github.com/lixenwraith/blockcast/engine"
	"github.com/lixenwraith/blockcast/events"
	"github.com/lixenwraith/blockcast/input"
	"github.com/lixenwraith/blockcast/render"
	"github.com/lixenwraith/blockcast/status"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "blockcast: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(config.DefaultEnvFile, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	policy, err := cfg.HandPolicy()
	if err != nil {
		return err
	}
	layout, err := cfg.KeyLayout()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	defer core.SetCrashTerminal(nil)

	// Audio is optional; failures leave the game silent
	sounds := audio.NewSoundManager(&cfg.Audio)
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	feedback := events.NewFeedbackQueue()
	stats := status.NewRegistry()
	logger := log.New(log.Writer(), "[engine] ", log.Flags())

	session := engine.NewSession(engine.Options{
		Policy: policy,
		Layout: layout,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	game := engine.NewGame(session, feedback, stats, logger)
	renderer := render.NewTerminalRenderer(screen, stats, sounds.Muted())
	log.Printf("blockcast started: seed %d, policy %s, layout %s", seed, policy.Name(), layout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan engine.Key, constants.InputQueueSize)
	translator := input.NewTranslator(nil)
	core.Go(func() { pollInput(ctx, cancel, screen, translator, sounds, keys) })

	consumer := audio.NewConsumer(feedback, sounds, log.Default())
	core.Go(func() { consumer.Run(ctx) })

	err = engine.NewLoop(game, keys, renderer.RenderFrame).Run(ctx)
	log.Printf("blockcast stopped: %v", stats.Dump())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pollInput forwards terminal events in arrival order. It is the only sender on keys.
func pollInput(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, translator *input.Translator, sounds *audio.SoundManager, keys chan<- engine.Key) {
	defer close(keys)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		cmd := translator.Translate(ev)
		switch cmd.Action {
		case input.ActionGame:
			select {
			case keys <- cmd.Key:
			case <-ctx.Done():
				return
			}
		case input.ActionMute:
			log.Printf("audio muted: %v", sounds.ToggleMute())
		case input.ActionQuit:
			cancel()
			return
		case input.ActionResize:
			screen.Sync()
		}
	}
}
