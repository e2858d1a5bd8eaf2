package house_stats_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Aggregates(t *testing.T) {
	r := NewHouseStatsRepository()

	r.Record(100, 50)
	r.Record(100, 150)

	state := r.State()
	assert.Equal(t, 2, state.TotalOpenings)
	assert.Equal(t, int64(200), state.TotalSpent)
	assert.Equal(t, int64(200), state.TotalItemValue)
	assert.InDelta(t, 1.0, state.PayoutRatio, 1e-9)
	assert.InDelta(t, 1.0, state.WindowRatio, 1e-9)
	require.Len(t, state.Window, 2)
}

func TestRecord_WindowBounded(t *testing.T) {
	r := NewHouseStatsRepository()

	for i := 0; i < windowSize+10; i++ {
		r.Record(10, 5)
	}

	state := r.State()
	assert.Equal(t, windowSize+10, state.TotalOpenings)
	assert.Len(t, state.Window, windowSize)
}

func TestState_ReturnsCopy(t *testing.T) {
	r := NewHouseStatsRepository()
	r.Record(10, 5)

	state := r.State()
	state.Window[0].Spent = 999

	fresh := r.State()
	assert.Equal(t, int64(10), fresh.Window[0].Spent)
}
