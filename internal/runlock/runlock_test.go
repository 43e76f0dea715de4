package runlock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	t.Run("GoodPath_LockIsAcquiredAndReleased", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".reporter.lock")

		lock, err := Acquire(path)
		require.NoError(t, err)
		require.NoError(t, lock.Release())
	})

	t.Run("GoodPath_LockCanBeReacquiredAfterRelease", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".reporter.lock")

		lock, err := Acquire(path)
		require.NoError(t, err)
		require.NoError(t, lock.Release())

		lock, err = Acquire(path)
		require.NoError(t, err)
		require.NoError(t, lock.Release())
	})

	t.Run("SadPath_SecondAcquireFailsWhileHeld", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".reporter.lock")

		lock, err := Acquire(path)
		require.NoError(t, err)
		defer func() { require.NoError(t, lock.Release()) }()

		_, err = Acquire(path)
		require.ErrorIs(t, err, ErrLockHeld)
	})

	t.Run("SadPath_UnwritableLockPathIsAnError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist", ".reporter.lock")

		_, err := Acquire(path)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrLockHeld)
	})
}
