package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New(":8080")
	assert.Equal(t, ":8080", s.addr)
	assert.Equal(t, DefaultReadTimeout, s.readTimeout)
	assert.Equal(t, DefaultWriteTimeout, s.writeTimeout)
	assert.Equal(t, DefaultIdleTimeout, s.idleTimeout)
	assert.Equal(t, DefaultShutdownTimeout, s.shutdown)
	assert.Equal(t, DefaultMaxHeaderBytes, s.maxHeaderBytes)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	s := New(":8080",
		WithReadTimeout(time.Second),
		WithWriteTimeout(2*time.Second),
		WithIdleTimeout(3*time.Second),
		WithShutdownTimeout(4*time.Second),
		WithMaxHeaderBytes(2048),
	)

	assert.Equal(t, time.Second, s.readTimeout)
	assert.Equal(t, 2*time.Second, s.writeTimeout)
	assert.Equal(t, 3*time.Second, s.idleTimeout)
	assert.Equal(t, 4*time.Second, s.shutdown)
	assert.Equal(t, 2048, s.maxHeaderBytes)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing_address", func(t *testing.T) {
		t.Parallel()

		_, err := NewFromConfig(Config{})
		assert.ErrorIs(t, err, ErrMissingAddress)
	})

	t.Run("config_applied", func(t *testing.T) {
		t.Parallel()

		s, err := NewFromConfig(Config{
			Addr:            ":9090",
			ReadTimeout:     time.Second,
			ShutdownTimeout: 2 * time.Second,
		})
		require.NoError(t, err)

		assert.Equal(t, ":9090", s.addr)
		assert.Equal(t, time.Second, s.readTimeout)
		assert.Equal(t, 2*time.Second, s.shutdown)
		// Zero config values keep the defaults.
		assert.Equal(t, DefaultWriteTimeout, s.writeTimeout)
	})

	t.Run("options_override_config", func(t *testing.T) {
		t.Parallel()

		s, err := NewFromConfig(Config{Addr: ":9090", ReadTimeout: time.Second},
			WithReadTimeout(5*time.Second))
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, s.readTimeout)
	})
}

func TestStopWithoutStart(t *testing.T) {
	t.Parallel()

	assert.NoError(t, New(":8080").Stop())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	s := New("localhost:0", WithShutdownTimeout(time.Second))

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, http.NewServeMux())()
	}()

	// Let the listener come up before asking it to stop.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after context cancellation")
	}
}
