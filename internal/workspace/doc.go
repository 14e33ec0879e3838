// Package workspace is the single authority for the on-disk layout of an
// analysis project: where the manifest lives, where each framework's skill
// output accumulates, where reports land, and where the skill library keeps
// its agent reference documents.
package workspace
