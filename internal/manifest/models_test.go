package manifest_test

import (
	"errors"
	"testing"

	"trowel/internal/manifest"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  manifest.Status
		ok    bool
	}{
		{"pending", manifest.StatusPending, true},
		{"in_progress", manifest.StatusInProgress, true},
		{"completed", manifest.StatusCompleted, true},
		{"failed", manifest.StatusFailed, true},
		{"  Failed  ", manifest.StatusFailed, true},
		{"IN_PROGRESS", manifest.StatusInProgress, true},
		{"", "", false},
		{"done", "", false},
		{"in-progress", "", false},
	}
	for _, tc := range cases {
		got, ok := manifest.ParseStatus(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseStatus(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTrackDefaultsToPendingAndRejectsDuplicates(t *testing.T) {
	m := manifest.NewManifest()

	if err := m.Track(manifest.Framework{Name: "flask", Path: "repos/flask"}); err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	fw, ok := m.Get("flask")
	if !ok {
		t.Fatal("expected flask tracked")
	}
	if fw.Status != manifest.StatusPending {
		t.Fatalf("expected default pending, got %q", fw.Status)
	}

	err := m.Track(manifest.Framework{Name: "flask", Path: "elsewhere"})
	if !errors.Is(err, manifest.ErrAlreadyTracked) {
		t.Fatalf("expected ErrAlreadyTracked, got %v", err)
	}

	if err := m.Track(manifest.Framework{Name: "", Path: "repos/x"}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := m.Track(manifest.Framework{Name: "x", Status: "done"}); !errors.Is(err, manifest.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestSetStatusValidation(t *testing.T) {
	m := manifest.NewManifest()
	if err := m.Track(manifest.Framework{Name: "gin"}); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	if err := m.SetStatus("gin", manifest.StatusCompleted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	fw, _ := m.Get("gin")
	if fw.Status != manifest.StatusCompleted {
		t.Fatalf("expected completed, got %q", fw.Status)
	}

	// Any known status is assignable regardless of the current one.
	if err := m.SetStatus("gin", manifest.StatusPending); err != nil {
		t.Fatalf("SetStatus back to pending failed: %v", err)
	}

	if err := m.SetStatus("absent", manifest.StatusFailed); !errors.Is(err, manifest.ErrNotTracked) {
		t.Fatalf("expected ErrNotTracked, got %v", err)
	}
	if err := m.SetStatus("gin", "paused"); !errors.Is(err, manifest.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestNextPendingFollowsTrackingOrder(t *testing.T) {
	m := manifest.NewManifest()
	for _, name := range []string{"zephyr", "alpha", "monk", "delta"} {
		if err := m.Track(manifest.Framework{Name: name}); err != nil {
			t.Fatalf("Track %s failed: %v", name, err)
		}
	}
	if err := m.SetStatus("alpha", manifest.StatusCompleted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	batch := m.NextPending(2)
	if len(batch) != 2 || batch[0].Name != "zephyr" || batch[1].Name != "monk" {
		t.Fatalf("unexpected batch: %#v", batch)
	}

	all := m.NextPending(10)
	if len(all) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(all))
	}

	if got := m.NextPending(0); len(got) != 0 {
		t.Fatalf("expected empty batch for limit 0, got %#v", got)
	}
	if got := m.NextPending(-3); len(got) != 0 {
		t.Fatalf("expected empty batch for negative limit, got %#v", got)
	}
}

func TestInStatusAndCounts(t *testing.T) {
	m := manifest.NewManifest()
	seed := map[string]manifest.Status{
		"a": manifest.StatusPending,
		"b": manifest.StatusInProgress,
		"c": manifest.StatusInProgress,
		"d": manifest.StatusFailed,
	}
	for _, name := range []string{"a", "b", "c", "d"} {
		if err := m.Track(manifest.Framework{Name: name, Status: seed[name]}); err != nil {
			t.Fatalf("Track %s failed: %v", name, err)
		}
	}

	running := m.InStatus(manifest.StatusInProgress)
	if len(running) != 2 || running[0].Name != "b" || running[1].Name != "c" {
		t.Fatalf("unexpected in_progress set: %#v", running)
	}

	counts := m.Counts()
	if counts[manifest.StatusPending] != 1 || counts[manifest.StatusInProgress] != 2 ||
		counts[manifest.StatusFailed] != 1 || counts[manifest.StatusCompleted] != 0 {
		t.Fatalf("unexpected counts: %#v", counts)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := manifest.NewManifest()
	if err := m.Track(manifest.Framework{Name: "flask"}); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	fw, _ := m.Get("flask")
	fw.Status = manifest.StatusFailed

	kept, _ := m.Get("flask")
	if kept.Status != manifest.StatusPending {
		t.Fatalf("mutating the copy leaked into the manifest: %q", kept.Status)
	}
}
