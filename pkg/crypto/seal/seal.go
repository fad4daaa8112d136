// Package seal provides authenticated encryption for snapshot payloads.
//
// It selects the cipher by hardware: AES-GCM where AES instructions are
// available, ChaCha20-Poly1305 otherwise. Both prepend the nonce to the
// ciphertext.
package seal

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"runtime"
)

// Algorithm identifies the sealing cipher.
type Algorithm string

const (
	AESGCM           Algorithm = "aes-gcm"
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// Sealer provides authenticated encryption with associated data.
type Sealer interface {
	// Algorithm returns the cipher in use.
	Algorithm() Algorithm

	// Seal encrypts plaintext, binding aad to the ciphertext.
	Seal(plaintext, aad []byte) ([]byte, error)

	// Open decrypts ciphertext produced by Seal with the same aad.
	Open(ciphertext, aad []byte) ([]byte, error)
}

// New creates a sealer with the given 32-byte key, picking the cipher
// best suited to the current hardware.
func New(key []byte) (Sealer, error) {
	if hardwareAES() {
		return NewAESGCM(key)
	}
	return NewChaCha20(key)
}

// NewWithAlgorithm creates a sealer of the requested algorithm.
func NewWithAlgorithm(key []byte, alg Algorithm) (Sealer, error) {
	switch alg {
	case AESGCM:
		return NewAESGCM(key)
	case ChaCha20Poly1305:
		return NewChaCha20(key)
	default:
		return nil, fmt.Errorf("seal: unknown algorithm %q", alg)
	}
}

// hardwareAES reports whether Go's crypto/aes is hardware accelerated on
// this architecture.
func hardwareAES() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return true
	default:
		return false
	}
}

type aeadSealer struct {
	alg  Algorithm
	aead cipher.AEAD
}

func (s *aeadSealer) Algorithm() Algorithm {
	return s.alg
}

func (s *aeadSealer) Seal(plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plaintext, aad), nil
}

func (s *aeadSealer) Open(ciphertext, aad []byte) ([]byte, error) {
	if len(ciphertext) < s.aead.NonceSize() {
		return nil, errors.New("seal: ciphertext too short")
	}
	nonce, rest := ciphertext[:s.aead.NonceSize()], ciphertext[s.aead.NonceSize():]
	return s.aead.Open(nil, nonce, rest, aad)
}
