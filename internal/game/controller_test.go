package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Hazard-Board/internal/board"
	"github.com/Garsondee/Hazard-Board/internal/config"
)

func testController(t *testing.T, mutate func(*Options)) *controller {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	opts := Options{Board: cfg.Board, Scenario: config.DefaultScenario()}
	if mutate != nil {
		mutate(&opts)
	}
	return newController(opts)
}

func hoverCell(c *controller, row, col int) {
	cell := c.board.Grid.At(row, col)
	c.hover(cell.X+1, cell.Y+1)
}

func TestController_StartsDirtyWithScenario(t *testing.T) {
	c := testController(t, nil)
	assert.True(t, c.state.needsRedraw())
	assert.Len(t, c.board.Units(nil), 18)
	assert.Equal(t, 1, c.level)
	assert.Zero(t, c.events.Len())
}

func TestController_HoverDrivesRenderState(t *testing.T) {
	c := testController(t, nil)
	c.state.redrawn()

	hoverCell(c, 3, 3)
	assert.True(t, c.state.needsRedraw())
	c.state.redrawn()

	hoverCell(c, 3, 3)
	assert.False(t, c.state.needsRedraw(), "same cell")

	c.hover(-1, -1)
	assert.True(t, c.state.needsRedraw())
}

func TestController_AddHazardOnHoveredLine(t *testing.T) {
	c := testController(t, nil)
	c.state.redrawn()

	assert.False(t, c.addHazard(board.HazardWall, board.AxisRow), "nothing hovered")
	assert.False(t, c.state.needsRedraw())

	hoverCell(c, 5, 2)
	c.state.redrawn()
	require.True(t, c.addHazard(board.HazardWall, board.AxisRow))
	assert.True(t, c.state.needsRedraw())
	assert.Equal(t, board.SpriteWallLeft, c.board.Grid.At(5, 4).Sprite)
	assert.Equal(t, board.SpriteWall, c.board.Grid.At(5, 5).Sprite)
	assert.Equal(t, board.SpriteWallRight, c.board.Grid.At(5, 6).Sprite)

	require.True(t, c.setLevel(2))
	require.True(t, c.addHazard(board.HazardLava, board.AxisCol))
	assert.Equal(t, board.HazardLava, c.board.Grid.At(1, 2).Hazard)
	assert.Equal(t, board.HazardNone, c.board.Grid.At(3, 2).Hazard)

	got := c.events.Recent()
	require.Len(t, got, 2)
	assert.Equal(t, "wall row 5 level 1", got[0].Message)
	assert.Equal(t, "lava col 2 level 2", got[1].Message)
}

func TestController_SetLevelRejectsUnknown(t *testing.T) {
	c := testController(t, nil)
	assert.False(t, c.setLevel(3))
	assert.False(t, c.setLevel(1), "already current")
	assert.Equal(t, 1, c.level)
}

func TestController_ClickSelectsAndLogs(t *testing.T) {
	c := testController(t, nil)
	hoverCell(c, 2, 7)
	cell := c.click()
	require.NotNil(t, cell)
	assert.Same(t, cell, c.selected)
	require.Equal(t, 1, c.events.Len())
	assert.Equal(t, EventClick, c.events.Recent()[0].Kind)

	c.hover(0, 0)
	assert.Nil(t, c.click())
	assert.Nil(t, c.selected)
}

func TestController_CopyDump(t *testing.T) {
	var copied string
	c := testController(t, func(o *Options) {
		o.CopyText = func(s string) error { copied = s; return nil }
	})
	require.NoError(t, c.copyDump())
	assert.Equal(t, c.board.Dump(), copied)

	failing := testController(t, func(o *Options) {
		o.CopyText = func(string) error { return errors.New("no clipboard") }
	})
	assert.Error(t, failing.copyDump())
	assert.Equal(t, EventError, failing.events.Recent()[0].Kind)
}

func TestController_ReloadFromWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hazards: [{axis: row, coord: 5, kind: wall}]"), 0o600))

	events := make(chan string, 1)
	c := testController(t, func(o *Options) {
		o.ScenarioPath = path
		o.Watch = events
	})
	c.state.redrawn()

	c.drainWatcher()
	assert.False(t, c.state.needsRedraw(), "no events pending")

	events <- path
	c.drainWatcher()
	assert.True(t, c.state.needsRedraw())
	assert.Equal(t, board.HazardWall, c.board.Grid.At(5, 5).Hazard)
	assert.Empty(t, c.board.Units(nil))

	require.NoError(t, os.WriteFile(path, []byte("hazards: [{axis: row, coord: 50, kind: wall}]"), 0o600))
	assert.Error(t, c.reload())
	assert.Equal(t, board.HazardWall, c.board.Grid.At(5, 5).Hazard, "bad reload keeps the board")

	close(events)
	c.drainWatcher()
	assert.Nil(t, c.watch)
}

func TestController_WatcherErrorsAreLogged(t *testing.T) {
	errs := make(chan error, 1)
	c := testController(t, func(o *Options) { o.WatchErrors = errs })

	errs <- errors.New("inotify overflow")
	c.drainWatcher()
	require.Equal(t, 1, c.events.Len())
	assert.Equal(t, EventError, c.events.Recent()[0].Kind)
	assert.Equal(t, board.HazardNone, c.board.Grid.At(5, 5).Hazard)
}
