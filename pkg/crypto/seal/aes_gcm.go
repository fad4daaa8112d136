package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// NewAESGCM creates an AES-256-GCM sealer. The key must be 32 bytes.
func NewAESGCM(key []byte) (Sealer, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("seal: aes-gcm requires a 32-byte key, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seal: aes cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("seal: gcm mode: %w", err)
	}

	return &aeadSealer{alg: AESGCM, aead: aead}, nil
}
