package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"trowel/internal/manifest"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// statusCell renders one status value for the table, colorized when the
// destination is a terminal.
func statusCell(status manifest.Status, colorize bool) string {
	label := formatStatusLabel(string(status))
	if !colorize {
		return label
	}
	color := statusColor(status)
	if color == "" {
		return label
	}
	return color + label + ansiReset
}

func statusColor(status manifest.Status) string {
	switch status {
	case manifest.StatusCompleted:
		return ansiGreen
	case manifest.StatusFailed:
		return ansiRed
	case manifest.StatusInProgress:
		return ansiYellow
	case manifest.StatusPending:
		return ansiBlue
	default:
		return ""
	}
}

// formatStatusLabel turns a manifest status into its table form, so
// "in_progress" reads as "In Progress".
func formatStatusLabel(status string) string {
	words := strings.ReplaceAll(strings.TrimSpace(status), "_", " ")
	if words == "" {
		return ""
	}
	return cases.Title(language.English).String(words)
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
