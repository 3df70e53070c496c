package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	a := assert.New(t)

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		seed := Seed()
		a.Positive(seed)
		seen[seed] = true
	}

	// collisions are astronomically unlikely
	a.Len(seen, 100)
}
