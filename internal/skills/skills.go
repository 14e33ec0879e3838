package skills

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"trowel/internal/workspace"
)

// DocFileName is the file inside a skill directory that defines the skill.
const DocFileName = "SKILL.md"

// Skill describes one installed analysis skill.
type Skill struct {
	Name        string
	Title       string
	Description string
	Phase       Phase
	Path        string
}

// DocPath returns the definition file for a named skill under dir.
func DocPath(dir, name string) string {
	return filepath.Join(dir, name, DocFileName)
}

// DocBody returns a skill document with its frontmatter removed. Damaged
// frontmatter is left in place; callers embedding the document want the raw
// text over a failure.
func DocBody(raw []byte) []byte {
	_, body, had, err := splitFrontmatter(raw)
	if err != nil || !had {
		return raw
	}
	return body
}

// Load reads the skill catalog from dir: every subdirectory holding a
// SKILL.md, sorted by name. A missing dir means nothing is installed and
// yields an empty catalog. The coordinator's own skill directory is the
// pipeline entry point, not an assignable analysis, so it is excluded.
func Load(dir string) ([]Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read skills directory: %w", err)
	}

	var catalog []Skill
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || name == workspace.SkillName {
			continue
		}

		path := DocPath(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read skill %s: %w", name, err)
		}

		skill, err := parseSkill(name, path, raw)
		if err != nil {
			return nil, fmt.Errorf("parse skill %s: %w", name, err)
		}
		catalog = append(catalog, skill)
	}

	sort.Slice(catalog, func(i, j int) bool { return catalog[i].Name < catalog[j].Name })
	return catalog, nil
}

func parseSkill(name, path string, raw []byte) (Skill, error) {
	meta, body, had, err := splitFrontmatter(raw)
	if err != nil {
		return Skill{}, err
	}

	var fields metadata
	if had {
		if err := yaml.Unmarshal(meta, &fields); err != nil {
			return Skill{}, fmt.Errorf("frontmatter: %w", err)
		}
	}

	title := documentTitle(body)
	if title == "" {
		title = name
	}

	return Skill{
		Name:        name,
		Title:       title,
		Description: strings.TrimSpace(fields.Description),
		Phase:       PhaseFor(name),
		Path:        path,
	}, nil
}
