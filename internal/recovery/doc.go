// Package recovery returns interrupted frameworks to the pending pool.
//
// A framework sits in in_progress only while an analyzer is actively working
// on it. After a crash there is no analyzer, so the status is a lie and the
// output directory holds an unknown fraction of the real result. The sweep
// repairs both: statuses go back to pending and partial output is deleted so
// the next run starts clean.
package recovery
