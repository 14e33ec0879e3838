package manifest

import (
	"fmt"
	"strings"
)

// Status represents the analysis lifecycle of a tracked framework.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// Framework is one tracked unit of analysis: a checkout under the repos root.
type Framework struct {
	Name   string
	Status Status
	Path   string
}

// Manifest is the in-memory form of the tracked framework set. Iteration
// follows first-tracked order, matching the on-disk document, so selection
// hands out work in the order frameworks were discovered.
type Manifest struct {
	names  []string
	byName map[string]*Framework
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{byName: make(map[string]*Framework)}
}

// Len reports the number of tracked frameworks.
func (m *Manifest) Len() int {
	return len(m.names)
}

// Has reports whether a framework is tracked.
func (m *Manifest) Has(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Get returns a copy of the named framework.
func (m *Manifest) Get(name string) (Framework, bool) {
	fw, ok := m.byName[name]
	if !ok {
		return Framework{}, false
	}
	return *fw, true
}

// Track appends a framework to the manifest. An empty status defaults to
// pending. Tracking an already-tracked name fails.
func (m *Manifest) Track(fw Framework) error {
	name := strings.TrimSpace(fw.Name)
	if name == "" {
		return fmt.Errorf("track framework: name must not be empty")
	}
	if _, ok := m.byName[name]; ok {
		return fmt.Errorf("track framework %q: %w", name, ErrAlreadyTracked)
	}
	status := fw.Status
	if status == "" {
		status = StatusPending
	}
	if _, ok := statusSet[status]; !ok {
		return fmt.Errorf("track framework %q: %w %q", name, ErrUnknownStatus, string(fw.Status))
	}
	if m.byName == nil {
		m.byName = make(map[string]*Framework)
	}
	m.names = append(m.names, name)
	m.byName[name] = &Framework{Name: name, Status: status, Path: fw.Path}
	return nil
}

// SetStatus records a new status for a tracked framework. Any known status
// may be assigned regardless of the current one; external drivers own the
// ordering of transitions.
func (m *Manifest) SetStatus(name string, status Status) error {
	fw, ok := m.byName[name]
	if !ok {
		return fmt.Errorf("framework %q: %w", name, ErrNotTracked)
	}
	if _, known := statusSet[status]; !known {
		return fmt.Errorf("framework %q: %w %q", name, ErrUnknownStatus, string(status))
	}
	fw.Status = status
	return nil
}

// Names returns the tracked names in first-tracked order.
func (m *Manifest) Names() []string {
	cp := make([]string, len(m.names))
	copy(cp, m.names)
	return cp
}

// Frameworks returns copies of all tracked frameworks in first-tracked order.
func (m *Manifest) Frameworks() []Framework {
	out := make([]Framework, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, *m.byName[name])
	}
	return out
}

// InStatus returns copies of the frameworks currently in the given status,
// in first-tracked order.
func (m *Manifest) InStatus(status Status) []Framework {
	var out []Framework
	for _, name := range m.names {
		if fw := m.byName[name]; fw.Status == status {
			out = append(out, *fw)
		}
	}
	return out
}

// NextPending returns up to limit pending frameworks in first-tracked order.
// A limit of zero or less selects nothing.
func (m *Manifest) NextPending(limit int) []Framework {
	if limit <= 0 {
		return nil
	}
	var out []Framework
	for _, name := range m.names {
		fw := m.byName[name]
		if fw.Status != StatusPending {
			continue
		}
		out = append(out, *fw)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Counts aggregates tracked frameworks per status.
func (m *Manifest) Counts() map[Status]int {
	counts := make(map[Status]int, len(allStatuses))
	for _, fw := range m.byName {
		counts[fw.Status]++
	}
	return counts
}
