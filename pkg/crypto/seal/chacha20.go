package seal

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// NewChaCha20 creates a ChaCha20-Poly1305 sealer. The key must be 32
// bytes.
func NewChaCha20(key []byte) (Sealer, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("seal: chacha20-poly1305: %w", err)
	}

	return &aeadSealer{alg: ChaCha20Poly1305, aead: aead}, nil
}
