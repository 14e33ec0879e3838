package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"trowel/internal/logging"
	"trowel/internal/manifest"
)

// ErrRootMissing reports a source root that does not exist.
var ErrRootMissing = errors.New("source root does not exist")

// Lister enumerates candidate framework directories beneath a source root.
// The production implementation reads the filesystem; tests substitute fixed
// listings.
type Lister interface {
	List(ctx context.Context, root string) ([]string, error)
}

// DirLister lists the immediate subdirectories of the root. Hidden
// directories and plain files are not candidates.
type DirLister struct{}

func (DirLister) List(_ context.Context, root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootMissing, root)
		}
		return nil, fmt.Errorf("list source root: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Result summarizes a discovery pass.
type Result struct {
	// Added lists frameworks tracked for the first time, in scan order.
	Added []string
	// Missing lists tracked frameworks no longer present under the root.
	// They stay tracked; the operator decides what to do with them.
	Missing []string
	// Total is the tracked count after the pass.
	Total int
}

// Sync registers every directory the lister reports that is not yet tracked,
// as pending. Already-tracked frameworks keep their status, so re-running
// discovery after new checkouts arrive is safe mid-analysis.
func Sync(ctx context.Context, store *manifest.Store, lister Lister, root string, logger *slog.Logger) (Result, error) {
	log := logging.NewComponentLogger(logger, "discovery")

	names, err := lister.List(ctx, root)
	if err != nil {
		return Result{}, err
	}

	var result Result
	_, err = store.Update(ctx, func(m *manifest.Manifest) error {
		present := make(map[string]struct{}, len(names))
		for _, name := range names {
			present[name] = struct{}{}
			if m.Has(name) {
				continue
			}
			fw := manifest.Framework{
				Name:   name,
				Status: manifest.StatusPending,
				Path:   filepath.Join(root, name),
			}
			if err := m.Track(fw); err != nil {
				return err
			}
			result.Added = append(result.Added, name)
		}
		for _, name := range m.Names() {
			if _, ok := present[name]; !ok {
				result.Missing = append(result.Missing, name)
			}
		}
		result.Total = m.Len()
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info("discovery complete",
		logging.Int("tracked", result.Total),
		logging.Int("added", len(result.Added)))
	if len(result.Missing) > 0 {
		log.Warn("tracked frameworks missing from source root",
			logging.String("frameworks", strings.Join(result.Missing, ", ")),
			logging.Alert("missing_source"))
	}

	return result, nil
}
