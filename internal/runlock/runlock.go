package runlock

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
)

// ErrLockHeld indicates another invocation currently holds the run lock.
var ErrLockHeld = errors.New("run lock is held by another process")

// Lock is an advisory file lock guarding a full run. It keeps overlapping
// cron invocations from racing on the marker's read-then-write.
type Lock struct {
	logger *slog.Logger
	fl     *flock.Flock
}

// Acquire takes the lock at path without blocking. Returns ErrLockHeld when
// another process owns it.
func Acquire(path string) (*Lock, error) {
	logger := slog.With(
		slog.String("component", "run-lock"),
	)

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("unable to acquire run lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrLockHeld
	}

	logger.Debug("run lock acquired", slog.String("path", path))
	return &Lock{logger: logger, fl: fl}, nil
}

func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("unable to release run lock %s: %w", l.fl.Path(), err)
	}
	l.logger.Debug("run lock released", slog.String("path", l.fl.Path()))
	return nil
}
