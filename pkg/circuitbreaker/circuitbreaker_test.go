package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/duoc-capstone/biblioteca-service/pkg/circuitbreaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	failingSender := func() error {
		return errors.New("smtp relay unreachable")
	}
	okSender := func() error {
		return nil
	}

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuitbreaker.New(10, time.Second, 0.5, 3)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(okSender))
		}
	})

	t.Run("opens after failure percentile and fails fast", func(t *testing.T) {
		cb := circuitbreaker.New(10, time.Minute, 0.5, 3)
		for i := 0; i < 5; i++ {
			require.Error(t, cb.Call(failingSender))
		}
		err := cb.Call(okSender)
		require.ErrorIs(t, err, circuitbreaker.ErrOpen)
	})

	t.Run("recovers through half-open after timeout", func(t *testing.T) {
		cb := circuitbreaker.New(4, 10*time.Millisecond, 0.5, 2)
		for i := 0; i < 2; i++ {
			require.Error(t, cb.Call(failingSender))
		}
		require.ErrorIs(t, cb.Call(okSender), circuitbreaker.ErrOpen)

		time.Sleep(20 * time.Millisecond)
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(okSender))
		}
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		cb := circuitbreaker.New(4, time.Minute, 0.5, 2)
		for i := 0; i < 2; i++ {
			require.Error(t, cb.Call(failingSender))
		}
		require.ErrorIs(t, cb.Call(okSender), circuitbreaker.ErrOpen)
		cb.Reset()
		require.NoError(t, cb.Call(okSender))
	})
}
