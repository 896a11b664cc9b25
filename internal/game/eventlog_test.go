package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog_RecentIsChronological(t *testing.T) {
	el := NewEventLog()
	el.Add(1, EventClick, "a")
	el.Addf(2, EventHazard, "%s row %d", "wall", 5)
	got := el.Recent()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, "wall row 5", got[1].Message)
	assert.Equal(t, EventHazard, got[1].Kind)
}

func TestEventLog_WrapsAtCapacity(t *testing.T) {
	el := NewEventLog()
	for i := 0; i < logMaxEntries+5; i++ {
		el.Add(i, EventClick, "x")
	}
	assert.Equal(t, logMaxEntries, el.Len())
	got := el.Recent()
	assert.Equal(t, 5, got[0].Tick)
	assert.Equal(t, logMaxEntries+4, got[len(got)-1].Tick)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "hazard", EventHazard.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
