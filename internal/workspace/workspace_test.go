package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"trowel/internal/testsupport"
	"trowel/internal/workspace"
)

func TestPathDerivation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ws := workspace.New(cfg)

	if ws.ManifestPath() != filepath.Join(cfg.Paths.OutputDir, ".state", "manifest.json") {
		t.Fatalf("unexpected manifest path: %q", ws.ManifestPath())
	}

	outDir, err := ws.FrameworkOutputDir("flask")
	if err != nil {
		t.Fatalf("FrameworkOutputDir failed: %v", err)
	}
	if outDir != filepath.Join(cfg.Paths.OutputDir, "frameworks", "flask") {
		t.Fatalf("unexpected output dir: %q", outDir)
	}

	reportPath, err := ws.FrameworkReportPath("flask")
	if err != nil {
		t.Fatalf("FrameworkReportPath failed: %v", err)
	}
	if reportPath != filepath.Join(cfg.Paths.ReportsDir, "frameworks", "flask.md") {
		t.Fatalf("unexpected report path: %q", reportPath)
	}

	mapPath, err := ws.CodebaseMapPath("flask")
	if err != nil {
		t.Fatalf("CodebaseMapPath failed: %v", err)
	}
	if mapPath != filepath.Join(outDir, "codebase-map.md") {
		t.Fatalf("unexpected codebase map path: %q", mapPath)
	}

	skillPath, err := ws.SkillOutputPath("flask", "resilience-analysis")
	if err != nil {
		t.Fatalf("SkillOutputPath failed: %v", err)
	}
	if skillPath != filepath.Join(outDir, "resilience-analysis.md") {
		t.Fatalf("unexpected skill output path: %q", skillPath)
	}
	if _, err := ws.SkillOutputPath("flask", "../escape"); err == nil {
		t.Fatal("expected error for skill name with separator")
	}

	if ws.SynthesisDir() != filepath.Join(cfg.Paths.ReportsDir, "synthesis") {
		t.Fatalf("unexpected synthesis dir: %q", ws.SynthesisDir())
	}
	if ws.ReferencesDir() != filepath.Join(cfg.Paths.SkillsDir, "architectural-forensics", "references") {
		t.Fatalf("unexpected references dir: %q", ws.ReferencesDir())
	}
}

func TestEnsureDirectoriesCreatesStateAndReportTrees(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ws := workspace.New(cfg)

	if err := ws.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{ws.StateDir(), ws.FrameworkReportsDir(), ws.SynthesisDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestRemoveFrameworkOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ws := workspace.New(cfg)

	dir, err := ws.FrameworkOutputDir("gin")
	if err != nil {
		t.Fatalf("FrameworkOutputDir failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir partial output: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "notes.md"), []byte("partial"), 0o644); err != nil {
		t.Fatalf("write partial file: %v", err)
	}

	removed, err := ws.RemoveFrameworkOutput("gin")
	if err != nil {
		t.Fatalf("RemoveFrameworkOutput failed: %v", err)
	}
	if !removed {
		t.Fatal("expected removal to be reported")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected output dir removed, stat err: %v", err)
	}

	removed, err = ws.RemoveFrameworkOutput("gin")
	if err != nil {
		t.Fatalf("RemoveFrameworkOutput on absent dir failed: %v", err)
	}
	if removed {
		t.Fatal("expected no removal for absent dir")
	}
}

func TestRemoveFrameworkOutputRejectsPathSegments(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ws := workspace.New(cfg)

	for _, name := range []string{"", ".", "..", "a/b", "../escape"} {
		if _, err := ws.RemoveFrameworkOutput(name); err == nil {
			t.Fatalf("expected error for name %q", name)
		}
	}
}
