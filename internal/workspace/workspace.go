package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"trowel/internal/config"
)

// SkillName is the top-level skill whose reference documents drive agent
// briefings.
const SkillName = "architectural-forensics"

const (
	stateDirName        = ".state"
	manifestFileName    = "manifest.json"
	frameworksSubdir    = "frameworks"
	synthesisSubdir     = "synthesis"
	referencesSubdir    = "references"
	codebaseMapFileName = "codebase-map.md"
)

// Workspace derives every on-disk location of an analysis project from the
// configured roots. All project path math lives here so commands and
// packages agree on the layout.
type Workspace struct {
	reposDir   string
	outputDir  string
	reportsDir string
	skillsDir  string
}

// New derives a workspace from configuration.
func New(cfg *config.Config) *Workspace {
	return &Workspace{
		reposDir:   cfg.Paths.ReposDir,
		outputDir:  cfg.Paths.OutputDir,
		reportsDir: cfg.Paths.ReportsDir,
		skillsDir:  cfg.Paths.SkillsDir,
	}
}

// ReposDir returns the source root scanned for framework checkouts.
func (w *Workspace) ReposDir() string {
	return w.reposDir
}

// StateDir returns the directory holding coordinator state.
func (w *Workspace) StateDir() string {
	return filepath.Join(w.outputDir, stateDirName)
}

// ManifestPath returns the manifest file location.
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.StateDir(), manifestFileName)
}

// FrameworkSourceDir returns the checkout location of a framework.
func (w *Workspace) FrameworkSourceDir(name string) (string, error) {
	if err := validateSegment(name); err != nil {
		return "", err
	}
	return filepath.Join(w.reposDir, name), nil
}

// FrameworkOutputRoot returns the directory under which every framework's
// skill output accumulates.
func (w *Workspace) FrameworkOutputRoot() string {
	return filepath.Join(w.outputDir, frameworksSubdir)
}

// FrameworkOutputDir returns where a framework's skill output accumulates.
func (w *Workspace) FrameworkOutputDir(name string) (string, error) {
	if err := validateSegment(name); err != nil {
		return "", err
	}
	return filepath.Join(w.FrameworkOutputRoot(), name), nil
}

// CodebaseMapPath returns where a framework agent writes its codebase map,
// the first artifact every skill pass reads.
func (w *Workspace) CodebaseMapPath(name string) (string, error) {
	dir, err := w.FrameworkOutputDir(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, codebaseMapFileName), nil
}

// SkillOutputPath returns where a skill pass writes its analysis of a
// framework.
func (w *Workspace) SkillOutputPath(framework, skill string) (string, error) {
	dir, err := w.FrameworkOutputDir(framework)
	if err != nil {
		return "", err
	}
	if err := validateSegment(skill); err != nil {
		return "", err
	}
	return filepath.Join(dir, skill+".md"), nil
}

// FrameworkReportPath returns the summary report location for a framework.
func (w *Workspace) FrameworkReportPath(name string) (string, error) {
	if err := validateSegment(name); err != nil {
		return "", err
	}
	return filepath.Join(w.FrameworkReportsDir(), name+".md"), nil
}

// FrameworkReportsDir returns the directory of per-framework summaries.
func (w *Workspace) FrameworkReportsDir() string {
	return filepath.Join(w.reportsDir, frameworksSubdir)
}

// SynthesisDir returns where cross-framework synthesis documents land.
func (w *Workspace) SynthesisDir() string {
	return filepath.Join(w.reportsDir, synthesisSubdir)
}

// SkillsDir returns the skill library root.
func (w *Workspace) SkillsDir() string {
	return w.skillsDir
}

// ReferencesDir returns the agent reference document directory.
func (w *Workspace) ReferencesDir() string {
	return filepath.Join(w.skillsDir, SkillName, referencesSubdir)
}

// EnsureDirectories creates the state and report trees. The repos root is
// deliberately left alone: a missing source tree is an operator problem the
// coordinator must report, not repair.
func (w *Workspace) EnsureDirectories() error {
	for _, dir := range []string{w.StateDir(), w.FrameworkReportsDir(), w.SynthesisDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// RemoveFrameworkOutput deletes a framework's partial output directory.
// It reports whether anything was removed.
func (w *Workspace) RemoveFrameworkOutput(name string) (bool, error) {
	dir, err := w.FrameworkOutputDir(name)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat output directory %q: %w", dir, err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("remove output directory %q: %w", dir, err)
	}
	return true, nil
}

// validateSegment rejects names that would escape the directory they are
// joined under. Framework names come from real directory names, so anything
// else indicates a damaged manifest or a hostile argument.
func validateSegment(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("framework name must not be empty")
	}
	if trimmed == "." || trimmed == ".." || filepath.Base(trimmed) != trimmed {
		return fmt.Errorf("framework name %q must be a bare directory name", name)
	}
	return nil
}
