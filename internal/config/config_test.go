package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"trowel/internal/config"
)

// chdir mirrors testing.T.Chdir, which needs a Go 1.24+ toolchain: it enters
// dir for the test's duration, updating PWD and restoring the old working
// directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		if dir, err = os.Getwd(); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("chdir restore: " + err.Error())
		}
	})
}

func TestLoadDefaultsWhenNoConfigPresent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected no config file in fresh directory")
	}
	if filepath.Base(resolved) != "trowel.toml" {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}

	if !filepath.IsAbs(cfg.Paths.ReposDir) || filepath.Base(cfg.Paths.ReposDir) != "repos" {
		t.Fatalf("unexpected repos dir: %q", cfg.Paths.ReposDir)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) || filepath.Base(cfg.Paths.OutputDir) != "forensics-output" {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if filepath.Base(cfg.Paths.ReportsDir) != "reports" {
		t.Fatalf("unexpected reports dir: %q", cfg.Paths.ReportsDir)
	}
	if !strings.HasSuffix(cfg.Paths.SkillsDir, filepath.Join(".claude", "skills")) {
		t.Fatalf("unexpected skills dir: %q", cfg.Paths.SkillsDir)
	}
	if cfg.Discovery.BatchLimit != 1 {
		t.Fatalf("unexpected batch limit: %d", cfg.Discovery.BatchLimit)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "trowel.toml")

	type payload struct {
		Paths struct {
			ReposDir  string `toml:"repos_dir"`
			OutputDir string `toml:"output_dir"`
		} `toml:"paths"`
		Discovery struct {
			BatchLimit int `toml:"batch_limit"`
		} `toml:"discovery"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.ReposDir = filepath.Join(tempDir, "checkouts")
	custom.Paths.OutputDir = filepath.Join(tempDir, "out")
	custom.Discovery.BatchLimit = 4
	custom.Logging.Format = "json"
	custom.Logging.Level = "debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.ReposDir != custom.Paths.ReposDir {
		t.Fatalf("expected repos dir override, got %q", cfg.Paths.ReposDir)
	}
	if cfg.Paths.OutputDir != custom.Paths.OutputDir {
		t.Fatalf("expected output dir override, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Discovery.BatchLimit != 4 {
		t.Fatalf("expected batch limit 4, got %d", cfg.Discovery.BatchLimit)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging overrides, got %+v", cfg.Logging)
	}
	if filepath.Base(cfg.Paths.ReportsDir) != "reports" {
		t.Fatalf("expected default reports dir, got %q", cfg.Paths.ReportsDir)
	}
}

func TestLoadPrefersProjectConfigOverUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	project := t.TempDir()
	chdir(t, project)

	userDir := filepath.Join(home, ".config", "trowel")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("mkdir user config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.toml"), []byte("[discovery]\nbatch_limit = 9\n"), 0o644); err != nil {
		t.Fatalf("write user config: %v", err)
	}
	if err := os.WriteFile("trowel.toml", []byte("[discovery]\nbatch_limit = 3\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if filepath.Base(resolved) != "trowel.toml" {
		t.Fatalf("expected project config to win, resolved %q", resolved)
	}
	if cfg.Discovery.BatchLimit != 3 {
		t.Fatalf("expected project batch limit 3, got %d", cfg.Discovery.BatchLimit)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	cfg, resolved, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false for missing file")
	}
	if filepath.Base(resolved) != "absent.toml" {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Discovery.BatchLimit != 1 {
		t.Fatalf("expected default batch limit, got %d", cfg.Discovery.BatchLimit)
	}
}

func TestCreateSampleDecodesCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "repos_dir") {
		t.Fatalf("sample config missing repos_dir: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Paths.ReposDir != "repos" {
		t.Fatalf("unexpected sample repos dir: %q", cfg.Paths.ReposDir)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := config.Default()
	cfg.Discovery.BatchLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative batch limit")
	}

	cfg = config.Default()
	cfg.Paths.OutputDir = cfg.Paths.ReposDir
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when output dir equals repos dir")
	}

	cfg = config.Default()
	cfg.Logging.Format = "logfmt"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "trowel.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"chatty\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expanded, err := config.ExpandPath("~/analysis")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if expanded != filepath.Join(home, "analysis") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}
