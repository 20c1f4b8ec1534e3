// Package otp generates one-time verification codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// Source produces one-time codes. Injected into the auth service so tests
// can supply a deterministic sequence.
type Source interface {
	Generate() (int, error)
}

// CryptoSource draws codes from crypto/rand.
type CryptoSource struct{}

// NewCryptoSource returns a Source backed by the operating system CSPRNG.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Generate returns a 6-digit code uniformly distributed in [100000, 999999].
func (s *CryptoSource) Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return 0, fmt.Errorf("otp generation: %w", err)
	}
	return codeMin + int(n.Int64()), nil
}
