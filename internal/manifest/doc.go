// Package manifest persists which frameworks are tracked for analysis and
// where each one stands in its lifecycle.
//
// The durable form is a single JSON document mapping framework names to their
// status and source path. The in-memory Manifest preserves the document's key
// order, so every walk over the tracked set follows first-discovered order
// and batch selection stays deterministic. Store serializes all access:
// reads take a shared advisory lock, and Update runs a caller-supplied
// mutation plus the atomic rewrite under an exclusive one.
//
// Damaged state never aborts a run. A manifest that fails to parse is
// reported, preserved as a .corrupt-* sibling when it would otherwise be
// overwritten, and treated as empty.
package manifest
