// Package engine coordinates multi-file metadata operations.
//
// The Engine applies a set of edits or a reconciled release to a list of
// audio files, one file at a time, reporting per-file progress through
// callbacks and collecting failures without aborting the batch. The
// Dispatcher wraps the Engine with a single-worker guard so that at most
// one batch runs at any moment, and exposes a cooperative Stop that takes
// effect at file boundaries.
package engine
