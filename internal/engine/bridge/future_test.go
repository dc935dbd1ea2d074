package bridge_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/pool"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports/mocks"
	"go.trai.ch/asyncwalk/internal/engine/bridge"
	"go.uber.org/mock/gomock"
)

// manualExecutor holds tasks until the test runs them.
type manualExecutor struct {
	mu    sync.Mutex
	tasks []func()
}

func (m *manualExecutor) Go(task func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *manualExecutor) runAll() {
	m.mu.Lock()
	tasks := m.tasks
	m.tasks = nil
	m.mu.Unlock()
	for _, task := range tasks {
		task()
	}
}

func TestSubmit_ResolvesWithValue(t *testing.T) {
	p := pool.New(1)
	defer func() { _ = p.Close() }()

	f := bridge.Submit(p, func() (int, error) { return 42, nil })

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.Ready())
}

func TestSubmit_PropagatesError(t *testing.T) {
	p := pool.New(1)
	defer func() { _ = p.Close() }()

	boom := errors.New("boom")
	f := bridge.Submit(p, func() (int, error) { return 0, boom })

	_, err := f.Wait(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSubmit_ExecutorRefuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mocks.NewMockBlockingExecutor(ctrl)
	ex.EXPECT().Go(gomock.Any()).Return(domain.ErrPoolClosed)

	f := bridge.Submit(ex, func() (string, error) {
		t.Error("closure must not run")
		return "", nil
	})

	require.True(t, f.Ready())
	_, err := f.Result()
	require.ErrorIs(t, err, domain.ErrPoolClosed)
}

func TestFuture_NotReadyUntilRun(t *testing.T) {
	ex := &manualExecutor{}
	f := bridge.Submit(ex, func() (int, error) { return 1, nil })

	assert.False(t, f.Ready())
	ex.runAll()
	assert.True(t, f.Ready())
}

func TestFuture_WaitCancelledLeavesFutureIntact(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ex := &manualExecutor{}
		f := bridge.Submit(ex, func() (int, error) { return 7, nil })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.Wait(ctx)
		require.ErrorIs(t, err, context.Canceled)

		ex.runAll()
		v, err := f.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})
}

func TestFuture_CancelBeforeResolveDiscards(t *testing.T) {
	ex := &manualExecutor{}
	f := bridge.Submit(ex, func() (string, error) { return "handle", nil })

	var discarded []string
	f.Cancel(func(s string) { discarded = append(discarded, s) })
	ex.runAll()

	assert.Equal(t, []string{"handle"}, discarded)
	assert.False(t, f.Ready())
}

func TestFuture_CancelAfterResolveDiscardsImmediately(t *testing.T) {
	f := bridge.Resolved("handle", nil)

	var discarded []string
	f.Cancel(func(s string) { discarded = append(discarded, s) })
	f.Cancel(func(s string) { t.Error("second cancel must be ignored") })

	assert.Equal(t, []string{"handle"}, discarded)
}

func TestFuture_CancelDiscardsFailedResults(t *testing.T) {
	ex := &manualExecutor{}
	f := bridge.Submit(ex, func() (string, error) { return "partial", errors.New("read failed") })

	var discarded []string
	f.Cancel(func(s string) { discarded = append(discarded, s) })
	ex.runAll()

	assert.Equal(t, []string{"partial"}, discarded)
}

func TestFuture_CancelNilDiscard(t *testing.T) {
	ex := &manualExecutor{}
	f := bridge.Submit(ex, func() (int, error) { return 1, nil })

	f.Cancel(nil)
	assert.NotPanics(t, ex.runAll)
}
