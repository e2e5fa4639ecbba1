package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomSource draws uniform random integers for password generation.
// Implementations must be safe for concurrent use, since generation
// calls may run in parallel.
type RandomSource interface {
	// IntN returns a uniform random integer in [0, n). n must be positive.
	IntN(n int) (int, error)
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random source: %w", err)
	}
	return int(v.Int64()), nil
}

// DefaultSource returns the crypto/rand backed source. Generated
// passwords are secrets, so anything feeding the generator must be a
// CSPRNG; seeded sources are for tests only.
func DefaultSource() RandomSource {
	return cryptoSource{}
}
