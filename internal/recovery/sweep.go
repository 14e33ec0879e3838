package recovery

import (
	"context"
	"log/slog"

	"trowel/internal/logging"
	"trowel/internal/manifest"
	"trowel/internal/workspace"
)

// CleanupFailure records a partial-output directory that could not be
// removed during a sweep.
type CleanupFailure struct {
	Framework string
	Err       error
}

// Result summarizes a recovery sweep.
type Result struct {
	// Reset lists frameworks returned from in_progress to pending, in
	// first-tracked order.
	Reset []string
	// Cleaned lists frameworks whose partial output directory was removed.
	Cleaned []string
	// Failures lists cleanup errors. They never fail the sweep; the reset to
	// pending matters more than reclaiming the directory.
	Failures []CleanupFailure
}

// Sweep returns every in_progress framework to pending and removes its
// partial output directory. Run it after a crash or interruption, before
// handing out new work: anything still marked in_progress has no live
// analyzer behind it.
//
// The status flips and directory removals happen inside one store update, so
// a concurrent selection cannot observe a framework that is pending but
// still owns partial output.
func Sweep(ctx context.Context, store *manifest.Store, ws *workspace.Workspace, logger *slog.Logger) (Result, error) {
	log := logging.NewComponentLogger(logger, "recovery")

	var result Result
	_, err := store.Update(ctx, func(m *manifest.Manifest) error {
		for _, fw := range m.InStatus(manifest.StatusInProgress) {
			if err := m.SetStatus(fw.Name, manifest.StatusPending); err != nil {
				return err
			}
			result.Reset = append(result.Reset, fw.Name)

			removed, err := ws.RemoveFrameworkOutput(fw.Name)
			if err != nil {
				result.Failures = append(result.Failures, CleanupFailure{Framework: fw.Name, Err: err})
				log.Warn("partial output cleanup failed",
					logging.String(logging.FieldFramework, fw.Name),
					logging.Error(err))
				continue
			}
			if removed {
				result.Cleaned = append(result.Cleaned, fw.Name)
				log.Info("removed partial output",
					logging.String(logging.FieldFramework, fw.Name))
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info("recovery sweep complete",
		logging.Int("reset", len(result.Reset)),
		logging.Int("cleaned", len(result.Cleaned)))
	return result, nil
}
