package snapshot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yndnr/snapstore-go/pkg/crypto/seal"
)

// SealedSerializer wraps another Serializer with authenticated encryption.
// The snapshot filename is bound as additional data, so a sealed file
// cannot be renamed to pass as a different snapshot.
type SealedSerializer struct {
	inner  Serializer
	sealer seal.Sealer
}

// NewSealedSerializer creates a sealed serializer around inner.
func NewSealedSerializer(inner Serializer, sealer seal.Sealer) *SealedSerializer {
	return &SealedSerializer{inner: inner, sealer: sealer}
}

func (s *SealedSerializer) Serialize(w io.Writer, snap *Snapshot) error {
	var buf bytes.Buffer
	if err := s.inner.Serialize(&buf, snap); err != nil {
		return err
	}

	sealed, err := s.sealer.Seal(buf.Bytes(), []byte(snap.Metadata.Filename()))
	if err != nil {
		return fmt.Errorf("snapshot: seal payload: %w", err)
	}

	if _, err := w.Write(sealed); err != nil {
		return fmt.Errorf("snapshot: write sealed payload: %w", err)
	}
	return nil
}

func (s *SealedSerializer) Deserialize(r io.Reader, m Metadata) (any, error) {
	sealed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read sealed payload: %w", err)
	}

	plain, err := s.sealer.Open(sealed, []byte(m.Filename()))
	if err != nil {
		return nil, fmt.Errorf("snapshot: open sealed payload: %w", err)
	}

	return s.inner.Deserialize(bytes.NewReader(plain), m)
}
