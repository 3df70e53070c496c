// Package rng sources high-quality seeds from crypto/rand
package rng

import (
	"crypto/rand"
	"math/big"
)

var maxSeed = new(big.Int).SetInt64(1<<62 - 1)

// Seed returns a positive random seed suitable for seeding a simulation
// deck. Only seed generation touches crypto/rand; the simulation hot path
// stays on math/rand
func Seed() int64 {
	b, err := rand.Int(rand.Reader, maxSeed)
	if err != nil {
		panic(err)
	}

	return b.Int64() + 1
}
