// Package snapshot provides durable point-in-time snapshot storage for
// event-sourced processors.
//
// Each snapshot is a single file named
// snapshot-<processorId>-<sequenceNr>-<timestamp> in one flat directory.
// The filename carries the full identity, so the in-memory metadata index
// is only a cache: it is rebuilt from a directory listing at startup and
// needs no persistence of its own.
//
// Saves run as independent one-shot workers with a bounded caller-side
// wait. Loads walk a processor's snapshots newest first and silently fall
// back to older ones when a file is corrupt or unreadable.
//
// @req RQ-0201
// @design DS-0204
package snapshot
