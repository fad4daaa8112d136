package snapshot

import (
	"fmt"
	"regexp"
	"strconv"
)

const filePrefix = "snapshot-"

// Filename grammar (DS-0204): three decimal integers joined by dashes.
// Anchored at the start only; trailing characters are tolerated so temp
// files sharing the prefix still resolve to their snapshot identity.
var filenamePattern = regexp.MustCompile(`^snapshot-(\d+)-(\d+)-(\d+)`)

// Metadata identifies one persisted snapshot. The triple is unique and
// doubles as the on-disk filename key.
type Metadata struct {
	// ProcessorID identifies the owning stateful processor.
	ProcessorID uint64 `json:"processor_id"`

	// SequenceNr is the processor's progress marker at snapshot time,
	// monotonic per processor.
	SequenceNr uint64 `json:"sequence_nr"`

	// Timestamp is wall-clock epoch milliseconds. It disambiguates
	// snapshots that share a sequence number and is not part of the
	// recency ordering.
	Timestamp int64 `json:"timestamp"`
}

// Filename returns the on-disk name for this snapshot. It is the exact
// inverse of ParseFilename.
func (m Metadata) Filename() string {
	return fmt.Sprintf("%s%d-%d-%d", filePrefix, m.ProcessorID, m.SequenceNr, m.Timestamp)
}

// ParseFilename extracts snapshot metadata from a file name. It reports
// false for names that do not match the snapshot grammar, including
// integers too large for their field.
func ParseFilename(name string) (Metadata, bool) {
	groups := filenamePattern.FindStringSubmatch(name)
	if groups == nil {
		return Metadata{}, false
	}

	pid, err := strconv.ParseUint(groups[1], 10, 64)
	if err != nil {
		return Metadata{}, false
	}
	seq, err := strconv.ParseUint(groups[2], 10, 64)
	if err != nil {
		return Metadata{}, false
	}
	ts, err := strconv.ParseInt(groups[3], 10, 64)
	if err != nil {
		return Metadata{}, false
	}

	return Metadata{ProcessorID: pid, SequenceNr: seq, Timestamp: ts}, true
}

// Snapshot couples metadata with the processor state it checkpoints. The
// payload is opaque to this package; a Serializer converts it to and from
// file bytes.
type Snapshot struct {
	Metadata Metadata
	Payload  any
}
