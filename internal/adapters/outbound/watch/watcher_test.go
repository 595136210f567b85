package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_DebouncedChange(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan struct{}, 1)
	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(dir, stop, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ts"), []byte("export {};\n"), 0644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}

	close(stop)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_StopWithoutEvents(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(t.TempDir(), stop, func() {})
	}()

	close(stop)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestIgnored(t *testing.T) {
	sep := string(filepath.Separator)
	assert.True(t, ignored("proj"+sep+"node_modules"+sep+"x.js"))
	assert.True(t, ignored("proj"+sep+".observer"+sep+"report.json"))
	assert.False(t, ignored("proj"+sep+"app"+sep+"page.tsx"))
}

func TestWatch_MissingRoot(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	// A nonexistent root registers nothing; the walk itself tolerates the
	// error, so Watch blocks until stopped.
	stop := make(chan struct{})
	close(stop)
	assert.NoError(t, w.Watch(filepath.Join(os.TempDir(), "watch-no-such-dir"), stop, func() {}))
}
