package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig []byte

// Paths contains the directory layout of an analysis project.
type Paths struct {
	// ReposDir is the source root scanned for framework checkouts.
	ReposDir string `toml:"repos_dir"`
	// OutputDir holds per-framework analysis artifacts and the state
	// directory with the manifest.
	OutputDir string `toml:"output_dir"`
	// ReportsDir holds human-facing framework summaries and synthesis output.
	ReportsDir string `toml:"reports_dir"`
	// SkillsDir is the root of the skill library used to brief agents.
	SkillsDir string `toml:"skills_dir"`
}

// Discovery contains settings for framework discovery and batch selection.
type Discovery struct {
	// BatchLimit is the default number of pending frameworks handed out per
	// selection when no explicit limit is given.
	BatchLimit int `toml:"batch_limit"`
}

// Logging controls diagnostic output: format, level, and an optional file
// sink next to stderr.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config carries every tunable for a trowel project: the directory layout,
// discovery defaults, and logging behavior.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Discovery Discovery `toml:"discovery"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns where 'config init' writes by default: the
// project-local trowel.toml.
func DefaultConfigPath() (string, error) {
	return filepath.Abs(projectConfigName)
}

// Load resolves, parses, and validates the effective configuration. Every
// path in the result is expanded and absolute. A missing file is not an
// error: defaults come back with exists=false and the path Load would have
// read, so callers can report where to create one.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		raw, err := os.ReadFile(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// resolveConfigPath picks the file Load reads: an explicit path wins, then
// the project-local file, then the user-wide one. Per-project layouts beat
// the user config so a checkout can carry its own settings.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("inspect config path: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	userPath, err := expandPath(userConfigPath)
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{projectPath, userPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return projectPath, false, nil
}

// expandPath absolutizes pathValue, expanding a leading "~" or "~/" to the
// home directory. The "~user" form passes through untouched.
func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if rest, ok := strings.CutPrefix(pathValue, "~"); ok && (rest == "" || rest[0] == '/' || rest[0] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimLeft(rest, `/\`))
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath applies the config path rules (tilde expansion,
// absolutization) for callers outside the package.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the embedded starter configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, sampleConfig, 0o644); err != nil {
		return fmt.Errorf("write sample config to %s: %w", path, err)
	}
	return nil
}
