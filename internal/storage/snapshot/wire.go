package snapshot

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrPayloadChecksum reports that a wire-framed payload failed its
// integrity check.
var ErrPayloadChecksum = errors.New("snapshot: payload checksum mismatch")

// Wire frame fields.
const (
	wirePayloadField  protowire.Number = 1
	wireChecksumField protowire.Number = 2
)

// WireSerializer frames an opaque []byte payload in protobuf wire
// encoding: field 1 carries the payload, field 2 a sha256 checksum over
// it. A checksum mismatch surfaces as a deserialize error, which the load
// path treats as one more corrupt candidate.
type WireSerializer struct{}

func (WireSerializer) Serialize(w io.Writer, snap *Snapshot) error {
	payload, ok := snap.Payload.([]byte)
	if !ok {
		return fmt.Errorf("snapshot: wire serializer requires []byte payload, got %T", snap.Payload)
	}

	sum := sha256.Sum256(payload)
	buf := protowire.AppendTag(nil, wirePayloadField, protowire.BytesType)
	buf = protowire.AppendBytes(buf, payload)
	buf = protowire.AppendTag(buf, wireChecksumField, protowire.BytesType)
	buf = protowire.AppendBytes(buf, sum[:])

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("snapshot: write frame: %w", err)
	}
	return nil
}

func (WireSerializer) Deserialize(r io.Reader, _ Metadata) (any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read frame: %w", err)
	}

	var payload, sum []byte
	seenPayload := false

	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return nil, fmt.Errorf("snapshot: malformed frame tag: %w", protowire.ParseError(n))
		}
		raw = raw[n:]

		if typ != protowire.BytesType {
			return nil, fmt.Errorf("snapshot: unexpected wire type %d for field %d", typ, num)
		}
		v, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return nil, fmt.Errorf("snapshot: malformed frame field %d: %w", num, protowire.ParseError(n))
		}
		raw = raw[n:]

		switch num {
		case wirePayloadField:
			payload = v
			seenPayload = true
		case wireChecksumField:
			sum = v
		}
	}

	if !seenPayload || len(sum) != sha256.Size {
		return nil, fmt.Errorf("snapshot: incomplete frame")
	}

	got := sha256.Sum256(payload)
	if !bytes.Equal(got[:], sum) {
		return nil, ErrPayloadChecksum
	}
	return payload, nil
}
