package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/audio"
	"github.com/lixenwraith/vi-crawler/config"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/game"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/logger"
	"github.com/lixenwraith/vi-crawler/morgue"
	"github.com/lixenwraith/vi-crawler/render"
	"github.com/lixenwraith/vi-crawler/spectate"
	"github.com/lixenwraith/vi-crawler/template"
	"github.com/lixenwraith/vi-crawler/terminal"
)

// hudRows is the space above the map reserved for status and messages
const hudRows = 7

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-crawler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	base, logFile, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}, os.Stderr)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log := logrus.NewEntry(base)

	// Template errors are fatal before any level exists
	var templates *template.Templates
	if cfg.Templates != "" {
		templates, err = template.Load(cfg.Templates)
	} else {
		templates, err = template.Default()
	}
	if err != nil {
		return err
	}

	g, err := game.New(cfg.Game(), templates, log)
	if err != nil {
		return err
	}

	if cfg.Audio {
		if player, err := audio.NewPlayer(cfg.AudioVolume, log); err == nil {
			g.SetAudio(player)
			defer player.Close()
		} else {
			log.WithError(err).Warn("continuing without audio")
		}
	}

	var ledger *morgue.Store
	if cfg.MorguePath != "" {
		if ledger, err = morgue.Open(cfg.MorguePath); err != nil {
			return err
		}
		defer ledger.Close()
	}

	screen, err := terminal.Open(hudRows)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Close()

	// Restore the terminal before a crash report reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Close()
			log.WithField("panic", r).Error("crashed")
			fmt.Fprintf(os.Stderr, "VI-CRAWLER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sinks := render.MultiSink{screen}
	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub(log.WithField("component", "spectate"))
		defer hub.Close()
		srv := &http.Server{Addr: cfg.SpectateAddr, Handler: hub, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("spectator server stopped")
			}
		}()
		defer srv.Close()
		sinks = append(sinks, hub)
	}

	h := &host{game: g, sinks: sinks, ledger: ledger, log: log}
	return h.loop(screen.Events())
}

// host drives the simulation from terminal events
type host struct {
	game     *game.Game
	sinks    render.Sink
	ledger   *morgue.Store
	log      *logrus.Entry
	recorded bool
}

func (h *host) loop(events <-chan tcell.Event) error {
	if err := h.sinks.Present(h.game.Batch()); err != nil {
		return err
	}

	for ev := range events {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				h.sinks.Present(h.game.Batch())
			}
			continue
		}

		if h.game.State().Terminal() && key.Key() == tcell.KeyRune && key.Rune() == 'r' {
			if err := h.game.Restart(); err != nil {
				return err
			}
			h.recorded = false
		} else if err := h.step(terminal.KeyFor(key.Key(), key.Rune())); err != nil {
			// Regeneration failed; the previous level stays playable
			h.log.WithError(err).Warn("level change failed")
		}

		if err := h.sinks.Present(h.game.Batch()); err != nil {
			return err
		}
		if h.game.QuitRequested() {
			h.record("abandoned")
			return nil
		}
	}
	return nil
}

// step feeds one key and runs phases until the player is asked again
func (h *host) step(k input.Key) error {
	if k == input.KeyNone {
		return nil
	}
	if err := h.game.Tick(k); err != nil {
		return err
	}
	for s := h.game.State(); s == engine.PlayerTurn || s == engine.MonsterTurn; s = h.game.State() {
		if err := h.game.Tick(input.KeyNone); err != nil {
			return err
		}
	}
	if s := h.game.State(); s.Terminal() {
		h.record(s.String())
	}
	return nil
}

func (h *host) record(outcome string) {
	if h.ledger == nil || h.recorded {
		return
	}
	h.recorded = true
	sum := h.game.Summary()
	run := morgue.Run{Seed: sum.Seed, Depth: sum.Depth, Outcome: outcome, Turns: sum.Turns}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.ledger.Record(ctx, run); err != nil {
		h.log.WithError(err).Warn("morgue write failed")
	}
}
