package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
)

// Serializer converts processor state to and from snapshot file bytes.
// The store is agnostic to the wire format; it only moves the bytes.
//
// Deserialize receives the snapshot's metadata so format implementations
// can bind the payload to its identity (see SealedSerializer).
type Serializer interface {
	Serialize(w io.Writer, snap *Snapshot) error
	Deserialize(r io.Reader, m Metadata) (any, error)
}

// JSONSerializer encodes the payload as a single JSON document. It is the
// default serializer.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(w io.Writer, snap *Snapshot) error {
	if err := json.NewEncoder(w).Encode(snap.Payload); err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}
	return nil
}

func (JSONSerializer) Deserialize(r io.Reader, _ Metadata) (any, error) {
	var payload any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}
	return payload, nil
}
