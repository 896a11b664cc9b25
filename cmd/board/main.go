package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Hazard-Board/internal/assets"
	"github.com/Garsondee/Hazard-Board/internal/config"
	"github.com/Garsondee/Hazard-Board/internal/game"
	"github.com/Garsondee/Hazard-Board/internal/logs"
)

const spriteLoadTimeout = 10 * time.Second

func main() {
	var cfgPath, scenarioPath string
	flag.StringVar(&cfgPath, "config", "", "path to config.yaml (defaults and HAZARD_* env when empty)")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario YAML; overrides the config file")
	flag.Parse()

	// Console logging until the configured sinks are known.
	_ = logs.Init("hazard-board", logs.Config{Level: "info"})

	if err := run(cfgPath, scenarioPath); err != nil {
		logs.Fatal("hazard board stopped", zap.Error(err))
	}
}

// run owns every resource that needs cleanup; main only exits after it
// has returned and its deferred closes have run.
func run(cfgPath, scenarioPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logs.Init("hazard-board", cfg.Log); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logs.Sync() }()

	if scenarioPath == "" {
		scenarioPath = cfg.Scenario
	}
	sc := config.DefaultScenario()
	if scenarioPath != "" {
		if sc, err = config.LoadScenario(scenarioPath); err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), spriteLoadTimeout)
	atlas, err := assets.LoadBoard(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	logs.Debug("sprites loaded", zap.Int("count", atlas.Len()))

	opts := game.Options{
		Board:        cfg.Board,
		Scenario:     sc,
		ScenarioPath: scenarioPath,
	}
	if cfg.Watch && scenarioPath != "" {
		w, err := config.NewWatcher(scenarioPath)
		if err != nil {
			logs.Warn("scenario watch disabled", zap.Error(err))
		} else {
			defer func() { _ = w.Close() }()
			opts.Watch = w.Events
			opts.WatchErrors = w.Errors
		}
	}

	g, err := game.New(atlas, opts)
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}

	width, height := g.Size()
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(width)*cfg.Window.Scale), int(float64(height)*cfg.Window.Scale))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
