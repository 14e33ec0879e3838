package skills

import (
	"bytes"
	"errors"
)

var errUnterminatedFrontmatter = errors.New("frontmatter opened but never closed")

// metadata holds the YAML fields a SKILL.md declares ahead of its body.
type metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// splitFrontmatter separates a leading `---` delimited YAML block from the
// Markdown body. A document without the opening delimiter has no
// frontmatter; had is false and body is the full input.
func splitFrontmatter(content []byte) (meta []byte, body []byte, had bool, err error) {
	open := []byte("---\n")
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closing := []byte("\n---\n")
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		// A closing delimiter on the final line without a trailing newline
		// still counts.
		tail := []byte("\n---")
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+1], nil, true, nil
		}
		return nil, nil, false, errUnterminatedFrontmatter
	}

	return rest[:idx+1], rest[idx+len(closing):], true, nil
}
