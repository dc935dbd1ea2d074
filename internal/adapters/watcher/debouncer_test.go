package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/watcher"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

type batches struct {
	mu  sync.Mutex
	got [][]ports.WatchEvent
}

func (b *batches) record(events []ports.WatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, events)
}

func (b *batches) snapshot() [][]ports.WatchEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]ports.WatchEvent(nil), b.got...)
}

func ev(path string, op ports.WatchOp) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: op}
}

func TestDebouncer_CoalescesWithinWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(ev("/srv/b.txt", ports.OpWrite))
		d.Add(ev("/srv/a.txt", ports.OpCreate))
		d.Add(ev("/srv/b.txt", ports.OpRemove))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		got := b.snapshot()
		require.Len(t, got, 1)
		assert.Equal(t, []ports.WatchEvent{
			ev("/srv/a.txt", ports.OpCreate),
			ev("/srv/b.txt", ports.OpRemove),
		}, got[0], "sorted by path, latest operation wins")
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(ev("/srv/a", ports.OpWrite))
		time.Sleep(60 * time.Millisecond)
		d.Add(ev("/srv/b", ports.OpWrite))
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, b.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		got := b.snapshot()
		require.Len(t, got, 1)
		assert.Len(t, got[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Flush()
		assert.Empty(t, b.snapshot(), "nothing pending")

		d.Add(ev("/srv/a", ports.OpCreate))
		d.Flush()
		require.Len(t, b.snapshot(), 1)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.snapshot(), 1, "flushed events are not delivered again")

		d.Add(ev("/srv/b", ports.OpWrite))
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		got := b.snapshot()
		require.Len(t, got, 2)
		assert.Equal(t, []ports.WatchEvent{ev("/srv/b", ports.OpWrite)}, got[1])
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add(ev("/srv/a", ports.OpWrite))
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add(ev("/srv/b", ports.OpWrite))
		d.Flush()
	})
}
