package equity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerequity-server/pkg/poker"
)

func TestCategoryDistribution(t *testing.T) {
	a := assert.New(t)

	dist, err := CategoryDistribution(2000, 11)
	a.NoError(err)

	sum := 0
	for _, count := range dist {
		sum += count
	}
	a.Equal(2000, sum)

	// with seven cards a pair is more common than quads, every time at this scale
	a.Greater(dist[poker.OnePair], dist[poker.FourOfAKind])

	// deterministic under a fixed seed
	again, err := CategoryDistribution(2000, 11)
	a.NoError(err)
	a.Equal(dist, again)

	_, err = CategoryDistribution(0, 0)
	a.ErrorIs(err, ErrInvalidOptions)
}

func TestRankAllHands(t *testing.T) {
	a := assert.New(t)

	// tiny trial count: this is a smoke test of the plumbing, not the estimates
	result, err := RankAllHands(context.Background(), 1, 10)
	a.NoError(err)
	a.Len(result, 169)

	for hand, probs := range result {
		a.InDelta(1.0, probs.Win+probs.Tie+probs.Loss, 1e-9, "hand %s", hand)
	}
}
