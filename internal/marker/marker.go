package marker

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store persists the highest epoch for which a report has completed. The
// marker is a single decimal integer in a file; an absent file means no epoch
// has been reported yet.
type Store struct {
	logger *slog.Logger
	path   string
}

func NewStore(path string) *Store {
	logger := slog.With(
		slog.String("component", "marker-store"),
	)
	return &Store{
		logger: logger,
		path:   path,
	}
}

// Read returns the last reported epoch, or 0 when the marker file does not
// exist. Any other read or parse failure is an error.
func (s *Store) Read() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("marker file not found, assuming first run", slog.String("path", s.path))
			return 0, nil
		}
		return 0, fmt.Errorf("unable to read marker file %s: %w", s.path, err)
	}

	epoch, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("unable to parse marker file %s: %w", s.path, err)
	}
	if epoch < 0 {
		return 0, fmt.Errorf("marker file %s holds a negative epoch: %d", s.path, epoch)
	}

	return epoch, nil
}

// Write replaces the marker with epoch. The content is written to a temporary
// file and renamed over the marker path so a killed process can never leave a
// truncated marker behind.
func (s *Store) Write(epoch int) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("unable to create temporary marker file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(epoch)); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write temporary marker file %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to close temporary marker file %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("unable to replace marker file %s: %w", s.path, err)
	}

	s.logger.Debug("marker updated", slog.String("path", s.path), slog.Int("epoch", epoch))
	return nil
}
