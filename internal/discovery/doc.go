// Package discovery turns checkouts under the repos root into tracked
// manifest entries. A pass is additive: new directories register as pending,
// known ones keep whatever status analysis has reached, and checkouts that
// vanished are reported but never dropped.
package discovery
