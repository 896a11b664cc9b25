package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Hazard-Board/internal/assets"
	"github.com/Garsondee/Hazard-Board/internal/board"
)

func TestBoardSprites_CoversEveryKey(t *testing.T) {
	atlas, err := assets.LoadBoard(context.Background())
	require.NoError(t, err)

	cells, units, err := boardSprites(atlas)
	require.NoError(t, err)
	require.Len(t, cells, len(board.CellSprites()))
	for _, k := range board.CellSprites() {
		assert.NotNil(t, cells[k], "sprite %s", k)
	}
	assert.NotNil(t, cells[board.SpriteCliff])
	assert.NotContains(t, cells, board.SpriteNone)
	assert.Len(t, units, len(board.UnitSpriteNames()))
}

func TestBoardSprites_MissingSpriteFails(t *testing.T) {
	partial, err := assets.Load(context.Background(), []string{board.SpriteFloorLight.Name()})
	require.NoError(t, err)

	_, _, err = boardSprites(partial)
	require.Error(t, err)
	assert.Contains(t, err.Error(), board.SpriteFloorDark.Name())
}
