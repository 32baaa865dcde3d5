package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/progrog/roguelike/internal/config"
	"github.com/progrog/roguelike/internal/data"
	"github.com/progrog/roguelike/internal/game"
	"github.com/progrog/roguelike/internal/input"
	"github.com/progrog/roguelike/internal/logging"
	"github.com/progrog/roguelike/internal/render"
	"github.com/progrog/roguelike/internal/rng"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/progrog.toml"
	if p := os.Getenv("PROGROG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Seed the shared random stream
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rng.New(seed)
	log.Info("random stream seeded", zap.Int64("seed", seed))

	// 4. Load data tables and build the first level
	mobs, err := data.LoadMobTable(cfg.Game.MobList)
	if err != nil {
		return fmt.Errorf("load mob table: %w", err)
	}
	log.Info("mob templates loaded", zap.Int("count", mobs.Count()))

	session, err := game.NewSession(cfg, src, mobs, log)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	// 5. Take over the terminal
	term, err := render.Open(cfg.Display, log)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer term.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := term.Events(ctx)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	interval := cfg.Display.FrameInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	log.Info("game loop started", zap.Duration("frame", interval))

	// 6. Frame-paced loop: at most one key is handed to the session per frame.
	pending := input.KeyNone
	term.Draw(session.Frame())
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Resize {
				term.Resize()
				continue
			}
			if ev.Key == input.KeyQuit {
				log.Info("quit requested", zap.String("state", session.State()))
				return nil
			}
			if pending == input.KeyNone {
				pending = ev.Key
			}

		case <-ticker.C:
			if pending != input.KeyNone {
				if err := session.Update(ctx, pending); err != nil {
					return err
				}
				pending = input.KeyNone
			}
			term.Draw(session.Frame())

		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
}
