package game

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/Garsondee/Hazard-Board/internal/board"
	"github.com/Garsondee/Hazard-Board/internal/config"
	"github.com/Garsondee/Hazard-Board/internal/logs"
)

// Options configures a Game.
type Options struct {
	Board    config.BoardConfig
	Scenario config.Scenario

	// ScenarioPath is re-read on R and on watcher events. Empty reloads Scenario.
	ScenarioPath string

	Sizer board.SpriteSizer

	// Watch and WatchErrors are drained once per frame. Both may be nil.
	Watch       <-chan string
	WatchErrors <-chan error

	// CopyText defaults to the system clipboard.
	CopyText func(string) error
}

// controller holds board interaction state. It has no ebiten dependency so
// input handling can be exercised without a window.
type controller struct {
	board    *board.Board
	state    renderState
	events   *EventLog
	selected *board.Cell
	level    int
	tick     int

	scenario     config.Scenario
	scenarioPath string
	watch        <-chan string
	watchErrs    <-chan error
	copyText     func(string) error
}

func newController(opts Options) *controller {
	c := &controller{
		state:        stateDirty,
		events:       NewEventLog(),
		level:        opts.Board.DefaultLevel,
		scenario:     opts.Scenario,
		scenarioPath: opts.ScenarioPath,
		watch:        opts.Watch,
		watchErrs:    opts.WatchErrors,
		copyText:     opts.CopyText,
	}
	if !board.LevelSupported(c.level) {
		c.level = 1
	}
	if c.copyText == nil {
		c.copyText = clipboard.WriteAll
	}

	rows, cols := opts.Board.Rows, opts.Board.Cols
	if rows == 0 || cols == 0 {
		rows, cols = board.DefaultRows, board.DefaultCols
	}
	geom := opts.Board.Geometry()
	if geom.CellSize == 0 {
		geom = board.DefaultGeometry
	}
	bopts := []board.Option{
		board.WithSize(rows, cols),
		board.WithGeometry(geom),
		board.WithClickHandler(c.cellClicked),
	}
	if opts.Sizer != nil {
		bopts = append(bopts, board.WithSpriteSizer(opts.Sizer))
	}
	bopts = append(bopts, opts.Scenario.Options()...)
	c.board = board.New(bopts...)

	for _, err := range c.board.InitErrors() {
		logs.Warn("scenario entry rejected", zap.String("scenario", opts.Scenario.Name), zap.Error(err))
		c.events.Add(c.tick, EventError, err.Error())
	}
	res := c.board.LastResolution()
	logs.Info("board ready",
		zap.String("scenario", opts.Scenario.Name),
		zap.Int("units", len(c.board.Units(nil))),
		zap.Int("hazards", res.Applied),
		zap.Int("covered", res.Covered))
	return c
}

// cellClicked is the board's click handler.
func (c *controller) cellClicked(cell *board.Cell) {
	logs.Info("cell clicked", zap.Int("row", cell.Row), zap.Int("col", cell.Col))
	c.events.Addf(c.tick, EventClick, "clicked (%d,%d) %s", cell.Row, cell.Col, cell.Hazard)
	c.selected = cell
}

func (c *controller) hover(x, y int) {
	c.state.hoverMoved(c.board.UpdateHover(x, y))
}

// click selects the hovered cell; clicking off the board clears the selection.
func (c *controller) click() *board.Cell {
	cell := c.board.Click()
	if cell == nil {
		c.selected = nil
	}
	return cell
}

// addHazard places a hazard of kind on the hovered cell's row or column at
// the current level. It reports whether the board changed.
func (c *controller) addHazard(kind board.HazardKind, axis board.Axis) bool {
	cell := c.board.Hovered()
	if cell == nil {
		return false
	}
	coord := cell.Row
	if axis == board.AxisCol {
		coord = cell.Col
	}
	h := board.Hazard{Axis: axis, Coord: coord, Kind: kind, Level: c.level}
	res, err := c.board.AddHazard(h)
	if err != nil {
		logs.Warn("hazard rejected", zap.Stringer("hazard", h), zap.Error(err))
		c.events.Add(c.tick, EventError, err.Error())
		return false
	}
	logs.Info("hazard added", zap.Stringer("hazard", h), zap.Int("covered", res.Covered))
	c.events.Addf(c.tick, EventHazard, "%s", h)
	c.state.invalidate()
	return true
}

func (c *controller) setLevel(level int) bool {
	if !board.LevelSupported(level) || level == c.level {
		return false
	}
	c.level = level
	logs.Debug("hazard level changed", zap.Int("level", level))
	return true
}

// copyDump puts the text dump of the board on the clipboard.
func (c *controller) copyDump() error {
	if err := c.copyText(c.board.Dump()); err != nil {
		logs.Warn("clipboard copy failed", zap.Error(err))
		c.events.Add(c.tick, EventError, "copy failed")
		return err
	}
	c.events.Add(c.tick, EventReload, "board copied")
	return nil
}

// reload re-reads the scenario file and swaps units and hazards in place.
// On failure the board keeps its current state.
func (c *controller) reload() error {
	sc := c.scenario
	if c.scenarioPath != "" {
		loaded, err := config.LoadScenario(c.scenarioPath)
		if err != nil {
			logs.Warn("scenario reload failed", zap.String("path", c.scenarioPath), zap.Error(err))
			c.events.Add(c.tick, EventError, "reload failed")
			return err
		}
		sc = loaded
	}
	res, err := sc.Apply(c.board)
	if err != nil {
		logs.Warn("scenario rejected", zap.String("scenario", sc.Name), zap.Error(err))
		c.events.Add(c.tick, EventError, "reload rejected")
		return err
	}
	c.scenario = sc
	c.state.invalidate()
	logs.Info("scenario reloaded", zap.String("scenario", sc.Name),
		zap.Int("hazards", res.Applied), zap.Int("covered", res.Covered))
	c.events.Addf(c.tick, EventReload, "reloaded %s", sc.Name)
	return nil
}

// drainWatcher applies pending file-change notifications without blocking.
func (c *controller) drainWatcher() {
	for {
		select {
		case name, ok := <-c.watch:
			if !ok {
				c.watch = nil
				continue
			}
			logs.Debug("scenario changed on disk", zap.String("path", name))
			_ = c.reload()
		case err, ok := <-c.watchErrs:
			if !ok {
				c.watchErrs = nil
				continue
			}
			logs.Error("scenario watcher", zap.Error(err))
			c.events.Add(c.tick, EventError, "watcher error")
		default:
			return
		}
	}
}
