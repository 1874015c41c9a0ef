package fanout_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pio-home/internal/app/fanout"
)

var errBoom = errors.New("boom")

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, nil, func(context.Context, string) (int, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRun_KeepsInputOrderAndIsolatesFailures(t *testing.T) {
	t.Parallel()

	dirs := []string{"blink", "broken", "wifi", "panics", "serial"}
	results := fanout.Run(context.Background(), 3, dirs, func(_ context.Context, dir string) (string, error) {
		// Completion order differs from input order.
		time.Sleep(time.Duration(10-len(dir)) * time.Millisecond)
		switch dir {
		case "broken":
			return "", errBoom
		case "panics":
			panic("corrupt platformio.ini")
		}
		return "proj:" + dir, nil
	})

	require.Len(t, results, len(dirs))
	assert.Equal(t, fanout.Result[string]{Value: "proj:blink"}, results[0])
	require.ErrorIs(t, results[1].Err, errBoom)
	assert.Equal(t, fanout.Result[string]{Value: "proj:wifi"}, results[2])
	require.ErrorContains(t, results[3].Err, "corrupt platformio.ini")
	assert.Equal(t, fanout.Result[string]{Value: "proj:serial"}, results[4])
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		workers  int
		items    int
		wantPeak int32
	}{
		{workers: 3, items: 15, wantPeak: 3},
		{workers: 0, items: 3, wantPeak: 1},
		{workers: -2, items: 3, wantPeak: 1},
		{workers: 100, items: 2, wantPeak: 2},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.workers), func(t *testing.T) {
			t.Parallel()

			var active, peak atomic.Int32
			items := make([]int, tt.items)
			results := fanout.Run(context.Background(), tt.workers, items, func(context.Context, int) (int, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				return 0, nil
			})

			assert.Len(t, results, tt.items)
			assert.LessOrEqual(t, peak.Load(), tt.wantPeak)
			if tt.workers == 0 {
				assert.Equal(t, int32(1), peak.Load())
			}
		})
	}
}

func TestRun_CancelStopsPendingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		started.Add(1)
		if n == 1 {
			cancel()
			time.Sleep(20 * time.Millisecond)
		}
		return n, nil
	})

	assert.Equal(t, fanout.Result[int]{Value: 1}, results[0])
	for _, r := range results[1:] {
		if r.Err != nil {
			require.ErrorIs(t, r.Err, context.Canceled)
		}
	}
	assert.Less(t, started.Load(), int32(3))
}

func TestRun_RunningItemSeesCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := fanout.Run(ctx, 1, []int{1}, func(ctx context.Context, _ int) (int, error) {
		cancel()
		return 0, ctx.Err()
	})
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	results := []fanout.Result[string]{
		{Value: "a"},
		{Err: errBoom},
		{Value: "c"},
		{Err: errBoom},
	}

	var failed []int
	got := fanout.Collect(results, func(idx int, err error) {
		assert.ErrorIs(t, err, errBoom)
		failed = append(failed, idx)
	})
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, []int{1, 3}, failed)

	assert.Equal(t, []string{"a", "c"}, fanout.Collect(results, nil))
}
