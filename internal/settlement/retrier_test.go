package settlement

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/settleup/internal/storage"
)

func TestRetrier_Retry(t *testing.T) {
	transient := errors.New("database is locked")

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first time", failures: 0, wantCalls: 1},
		{name: "succeeds after retries", failures: 2, err: transient, wantCalls: 3},
		{name: "gives up after max retries", failures: 10, err: transient, wantCalls: 4, wantErr: transient},
		{name: "missing group is not retried", failures: 10, err: fmt.Errorf("group g1: %w", storage.ErrNotFound), wantCalls: 1, wantErr: storage.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRetrier(3, time.Millisecond)

			calls := 0
			err := r.Retry(context.Background(), func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_CanceledContext(t *testing.T) {
	r := NewRetrier(3, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := r.Retry(ctx, func() error {
		calls++
		return errors.New("database is locked")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewRetrier_NegativeRetries(t *testing.T) {
	r := NewRetrier(-1, time.Millisecond)

	calls := 0
	_ = r.Retry(context.Background(), func() error {
		calls++
		return errors.New("database is locked")
	})
	assert.Equal(t, 1, calls)
}
