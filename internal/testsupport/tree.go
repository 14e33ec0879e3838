package testsupport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"trowel/internal/config"
	"trowel/internal/logging"
	"trowel/internal/manifest"
	"trowel/internal/workspace"
)

// SeedRepos creates framework checkout directories under the config's repos
// root.
func SeedRepos(t testing.TB, cfg *config.Config, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(cfg.Paths.ReposDir, name), 0o755); err != nil {
			t.Fatalf("mkdir repo %s: %v", name, err)
		}
	}
}

// MustStore opens a manifest store rooted at the config's workspace with a
// no-op logger.
func MustStore(t testing.TB, cfg *config.Config) *manifest.Store {
	t.Helper()
	return manifest.NewStore(workspace.New(cfg).ManifestPath(), logging.NewNop())
}

// SeedManifest persists the provided frameworks and returns the store.
func SeedManifest(t testing.TB, cfg *config.Config, frameworks ...manifest.Framework) *manifest.Store {
	t.Helper()
	store := MustStore(t, cfg)
	_, err := store.Update(context.Background(), func(m *manifest.Manifest) error {
		for _, fw := range frameworks {
			if fw.Path == "" {
				fw.Path = filepath.Join(cfg.Paths.ReposDir, fw.Name)
			}
			if err := m.Track(fw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed manifest: %v", err)
	}
	return store
}

// SeedSkill writes a skill document with YAML frontmatter and a title
// heading under the config's skill library.
func SeedSkill(t testing.TB, cfg *config.Config, name, description, title string) {
	t.Helper()
	dir := filepath.Join(cfg.Paths.SkillsDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir skill %s: %v", name, err)
	}
	doc := fmt.Sprintf("---\nname: %s\ndescription: %s\n---\n\n# %s\n\nWorkflow details.\n", name, description, title)
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write skill %s: %v", name, err)
	}
}

// SeedReference writes an agent reference document under the skill library's
// references directory.
func SeedReference(t testing.TB, cfg *config.Config, fileName, content string) {
	t.Helper()
	dir := workspace.New(cfg).ReferencesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir references dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write reference %s: %v", fileName, err)
	}
}
