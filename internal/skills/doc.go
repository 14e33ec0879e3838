// Package skills reads the installed analysis skill catalog.
//
// A skill lives in its own directory under the configured skills root and is
// defined by a SKILL.md: YAML frontmatter carrying the name and description,
// then a Markdown body whose first heading is the display title. Skills are
// partitioned into two fixed phases; the engineering pass reads source code
// and the cognitive pass interprets what the engineering pass produced.
package skills
