package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/humanpath/pkg/curves"
)

func TestScheduleOffsetsFromDistanceAndSpeed(t *testing.T) {
	t.Parallel()

	points := []curves.Point2D{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 100, Y: 50},
	}

	timed := Schedule(points, 100) // 100 px/s
	require.Len(t, timed, 3)

	assert.Equal(t, time.Duration(0), timed[0].Offset)
	assert.InDelta(t, float64(time.Second), float64(timed[1].Offset), float64(time.Millisecond))
	assert.InDelta(t, float64(1500*time.Millisecond), float64(timed[2].Offset), float64(time.Millisecond))
}

func TestScheduleMonotonicNonDecreasing(t *testing.T) {
	t.Parallel()

	points := []curves.Point2D{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: 5, Y: 5}, // coincident points advance the clock by nothing
		{X: 10, Y: 0},
	}

	timed := Schedule(points, 250)
	for i := 1; i < len(timed); i++ {
		require.GreaterOrEqual(t, timed[i].Offset, timed[i-1].Offset)
	}
	assert.Equal(t, timed[1].Offset, timed[2].Offset)
}

func TestScheduleNonPositiveSpeedFallsBack(t *testing.T) {
	t.Parallel()

	points := []curves.Point2D{{X: 0, Y: 0}, {X: 90, Y: 0}}

	timed := Schedule(points, 0)
	// Default speed is 900 px/s, so 90px takes 100ms.
	assert.InDelta(t, float64(100*time.Millisecond), float64(timed[1].Offset), float64(time.Millisecond))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	b := Bounds{MinX: 0, MinY: 0, MaxX: 1920, MaxY: 1080}
	points := []curves.Point2D{
		{X: -10, Y: 500},
		{X: 960, Y: -3},
		{X: 2000, Y: 1100},
		{X: 100, Y: 100},
	}

	got := Clamp(points, b)
	require.Len(t, got, 4)
	assert.Equal(t, curves.Point2D{X: 0, Y: 500}, got[0])
	assert.Equal(t, curves.Point2D{X: 960, Y: 0}, got[1])
	assert.Equal(t, curves.Point2D{X: 1920, Y: 1080}, got[2])
	assert.Equal(t, curves.Point2D{X: 100, Y: 100}, got[3])

	// Input is never mutated.
	assert.Equal(t, curves.Point2D{X: -10, Y: 500}, points[0])
}
