package driver

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/humanpath/pkg/curves"
)

// mockExecutor implements Executor and records every interaction instead of
// touching a real device.
type mockExecutor struct {
	mu             sync.Mutex
	events         []MouseEventData
	sleepDurations []time.Duration

	returnErr    error
	failOnCall   int // DispatchMouseEvent call number that starts failing.
	cancelOnCall int // DispatchMouseEvent call number that triggers cancelFunc.
	callCount    int
	cancelFunc   context.CancelFunc
}

func newMockExecutor() *mockExecutor {
	return &mockExecutor{}
}

func (m *mockExecutor) DispatchMouseEvent(ctx context.Context, data MouseEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	if m.returnErr != nil && m.failOnCall > 0 && m.callCount >= m.failOnCall {
		return m.returnErr
	}

	m.events = append(m.events, data)
	if m.cancelOnCall > 0 && len(m.events) == m.cancelOnCall && m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}

func (m *mockExecutor) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleepDurations = append(m.sleepDurations, d)
	return nil
}

// newTestWalker builds a walker with deterministic dependencies.
func newTestWalker(cfg Config, exec Executor) *Walker {
	return NewWalker(cfg, exec, zap.NewNop(), rand.New(rand.NewSource(12345)))
}

func line(n int) []curves.Point2D {
	points := make([]curves.Point2D, n)
	for i := range points {
		points[i] = curves.Point2D{X: float64(i) * 10, Y: 100}
	}
	return points
}

func TestWalkDispatchesEveryPointInOrder(t *testing.T) {
	t.Parallel()

	mock := newMockExecutor()
	w := newTestWalker(Config{}, mock)
	points := line(20)

	require.NoError(t, w.Walk(context.Background(), points))
	require.Len(t, mock.events, 20)

	for i, ev := range mock.events {
		assert.Equal(t, MouseMove, ev.Type)
		assert.Equal(t, ButtonNone, ev.Button)
		assert.Equal(t, points[i].X, ev.X, "zero-noise walk must be verbatim at index %d", i)
		assert.Equal(t, points[i].Y, ev.Y)
	}
}

func TestWalkEndpointsVerbatimDespiteNoise(t *testing.T) {
	t.Parallel()

	mock := newMockExecutor()
	w := newTestWalker(Config{TremorStrength: 2.0, DriftAmplitude: 3.0}, mock)
	points := line(30)

	require.NoError(t, w.Walk(context.Background(), points))
	require.Len(t, mock.events, 30)

	first := mock.events[0]
	last := mock.events[len(mock.events)-1]
	assert.Equal(t, points[0].X, first.X)
	assert.Equal(t, points[0].Y, first.Y)
	assert.Equal(t, points[29].X, last.X)
	assert.Equal(t, points[29].Y, last.Y)
}

func TestWalkHeldButtonBitfield(t *testing.T) {
	t.Parallel()

	mock := newMockExecutor()
	w := newTestWalker(Config{HeldButton: ButtonLeft}, mock)

	require.NoError(t, w.Walk(context.Background(), line(5)))
	for _, ev := range mock.events {
		assert.Equal(t, int64(1), ev.Buttons)
	}
}

func TestWalkClampsToBounds(t *testing.T) {
	t.Parallel()

	mock := newMockExecutor()
	bounds := &Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	w := newTestWalker(Config{Bounds: bounds}, mock)

	points := []curves.Point2D{{X: -50, Y: 10}, {X: 60, Y: 150}, {X: 300, Y: 50}}
	require.NoError(t, w.Walk(context.Background(), points))
	require.Len(t, mock.events, 3)

	assert.Equal(t, 0.0, mock.events[0].X)
	assert.Equal(t, 100.0, mock.events[1].Y)
	assert.Equal(t, 100.0, mock.events[2].X)
}

func TestWalkContextCancellationMidWalk(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mock := newMockExecutor()
	mock.cancelOnCall = 10
	mock.cancelFunc = cancel
	w := newTestWalker(Config{}, mock)

	err := w.Walk(ctx, line(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, mock.events, 10, "walk must stop between points once cancelled")
}

func TestWalkExecutorFailurePropagates(t *testing.T) {
	t.Parallel()

	mock := newMockExecutor()
	mock.returnErr = errors.New("device disconnected")
	mock.failOnCall = 5
	w := newTestWalker(Config{}, mock)

	err := w.Walk(context.Background(), line(50))
	require.Error(t, err)
	assert.EqualError(t, err, "device disconnected")
	assert.Len(t, mock.events, 4)
}

func TestWalkEmptySequenceIsNoop(t *testing.T) {
	t.Parallel()

	mock := newMockExecutor()
	w := newTestWalker(Config{}, mock)

	require.NoError(t, w.Walk(context.Background(), nil))
	assert.Empty(t, mock.events)
	assert.Empty(t, mock.sleepDurations)
}
