package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"trowel/internal/logging"
)

const lockRetryDelay = 25 * time.Millisecond

// Store owns the manifest file. All access goes through Load and Update so a
// read-modify-write cycle is a single unit of work under an advisory file
// lock, and a partially written document can never become visible.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewStore creates a store for the manifest at path. The advisory lock file
// lives next to the manifest.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "manifest"),
	}
}

// Path returns the manifest file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current manifest under a shared lock. A missing file is an
// empty manifest; an unreadable file is reported and treated as empty without
// touching the damaged document.
func (s *Store) Load(ctx context.Context) (*Manifest, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewManifest(), nil
		}
		return nil, fmt.Errorf("stat manifest: %w", err)
	}

	release, err := s.acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.read(false)
}

// Update runs mutate against the current manifest and persists the result,
// all under an exclusive lock. When mutate fails nothing is written. An
// unreadable existing file is quarantined beside the manifest before the
// fresh document replaces it.
func (s *Store) Update(ctx context.Context, mutate func(*Manifest) error) (*Manifest, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	release, err := s.acquire(ctx, false)
	if err != nil {
		return nil, err
	}
	defer release()

	manifest, err := s.read(true)
	if err != nil {
		return nil, err
	}
	if err := mutate(manifest); err != nil {
		return nil, err
	}
	if err := s.save(manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (s *Store) acquire(ctx context.Context, shared bool) (func(), error) {
	try := s.lock.TryLockContext
	if shared {
		try = s.lock.TryRLockContext
	}
	locked, err := try(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire manifest lock: %w", err)
	}
	if !locked {
		return nil, errors.New("acquire manifest lock: not acquired")
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("release manifest lock failed", logging.Error(err))
		}
	}, nil
}

// read loads the manifest from disk. Damaged documents reset to empty; when
// quarantine is set the damaged file is renamed aside first so the content
// survives the next save.
func (s *Store) read(quarantine bool) (*Manifest, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewManifest(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	manifest := NewManifest()
	if err := json.Unmarshal(data, manifest); err != nil {
		s.logger.Warn("manifest unreadable, starting with empty state",
			logging.Error(err),
			logging.String("path", s.path),
			logging.Alert("manifest_reset"))
		if quarantine {
			s.quarantine()
		}
		return NewManifest(), nil
	}
	return manifest, nil
}

func (s *Store) quarantine() {
	backupPath := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().UTC().Format("20060102-150405"))
	if err := os.Rename(s.path, backupPath); err != nil {
		s.logger.Warn("quarantine of unreadable manifest failed", logging.Error(err))
		return
	}
	s.logger.Warn("unreadable manifest moved aside", logging.String("backup", backupPath))
}

// save writes the manifest atomically: a temp file in the same directory is
// renamed over the previous document.
func (s *Store) save(m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write manifest temp file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}
