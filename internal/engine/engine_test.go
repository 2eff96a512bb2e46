package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := NewService(store)
	// Pin the clock to a known Wednesday; tests move it as needed.
	svc.now = func() time.Time {
		return time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	}
	// Deterministic species selection.
	svc.randIntn = func(n int) int { return 0 }
	return svc
}

func setDay(svc *Service, day time.Time) {
	svc.now = func() time.Time { return day }
}
