package wipe

import (
	"crypto/rand"
	"fmt"
)

// ByteSource supplies the bytes written during random passes. The engine
// only requires non-determinism, not cryptographic strength; tests swap in
// a deterministic source to assert exact pass content.
type ByteSource interface {
	Fill(buf []byte) error
}

// CryptoSource draws from the operating system entropy source.
type CryptoSource struct{}

func (CryptoSource) Fill(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("random data generation failed: %w", err)
	}
	return nil
}
