package model

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"conrad-voice/internal/app/api"
)

type stubEngine struct{ id int }

func (s *stubEngine) Transcribe(ctx context.Context, path string) (*api.Result, error) {
	return &api.Result{Text: "ok"}, nil
}

func TestManager_GetConstructsOnce(t *testing.T) {
	var calls int32
	factory := func(ctx context.Context) (api.Transcriber, error) {
		atomic.AddInt32(&calls, 1)
		return &stubEngine{id: 1}, nil
	}

	m := NewManager(factory, "test-model", zap.NewNop())
	assert.False(t, m.Loaded())

	first, err := m.Get(context.Background())
	require.NoError(t, err)
	second, err := m.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, m.Loaded())
}

func TestManager_ConcurrentFirstUseSingleConstruction(t *testing.T) {
	var calls int32
	factory := func(ctx context.Context) (api.Transcriber, error) {
		atomic.AddInt32(&calls, 1)
		return &stubEngine{}, nil
	}

	m := NewManager(factory, "test-model", zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Get(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestManager_RetriesAfterFailure(t *testing.T) {
	var calls int32
	factory := func(ctx context.Context) (api.Transcriber, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("server unreachable")
		}
		return &stubEngine{}, nil
	}

	m := NewManager(factory, "test-model", zap.NewNop())

	_, err := m.Get(context.Background())
	require.Error(t, err)
	assert.False(t, m.Loaded(), "failed construction must not cache an engine")

	engine, err := m.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, engine)
	assert.True(t, m.Loaded())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestManager_PreloadFailureIsNonFatal(t *testing.T) {
	factory := func(ctx context.Context) (api.Transcriber, error) {
		return nil, errors.New("no model file")
	}

	m := NewManager(factory, "test-model", zap.NewNop())
	m.Preload(context.Background())

	assert.False(t, m.Loaded())
}
