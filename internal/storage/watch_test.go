package storage

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWatch_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	store := NewAferoStore(afero.NewOsFs(), dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, "theme", func() { changed <- struct{}{} })
	}()

	// The watcher registers asynchronously; keep writing until it reports.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for notified := false; !notified; {
		select {
		case <-changed:
			notified = true
		case <-ticker.C:
			require.NoError(t, store.SetItem(context.Background(), "theme", "dark"))
		case <-deadline:
			t.Fatal("no change notification received")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
