package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"trowel/internal/config"
)

// ConfigOption mutates the generated test configuration before it is
// returned.
type ConfigOption func(*config.Config)

// NewConfig builds a config rooted in a fresh temp directory. The repos root
// exists and is empty; everything else is created on demand by the code
// under test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ReposDir = filepath.Join(base, "repos")
	cfg.Paths.OutputDir = filepath.Join(base, "forensics-output")
	cfg.Paths.ReportsDir = filepath.Join(base, "reports")
	cfg.Paths.SkillsDir = filepath.Join(base, "skills")

	if err := os.MkdirAll(cfg.Paths.ReposDir, 0o755); err != nil {
		t.Fatalf("mkdir repos dir: %v", err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBatchLimit sets the default selection batch size.
func WithBatchLimit(limit int) ConfigOption {
	return func(cfg *config.Config) { cfg.Discovery.BatchLimit = limit }
}

// WithLogFile routes test logging to the given file.
func WithLogFile(path string) ConfigOption {
	return func(cfg *config.Config) { cfg.Logging.File = path }
}

// BaseDir returns the temp directory backing a config from NewConfig.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ReposDir)
}
