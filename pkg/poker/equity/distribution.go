package equity

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokerequity-server/pkg/deck"
	"pokerequity-server/pkg/poker"
)

// Distribution counts how often each category shows up in random seven-card
// deals
type Distribution map[poker.Category]int

// CategoryDistribution deals trials random seven-card hands and tallies the
// category of each. A zero seed gets a time-based seed
func CategoryDistribution(trials int, seed int64) (Distribution, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive", ErrInvalidOptions)
	}

	dist := make(Distribution)
	d := deck.New()
	for i := 0; i < trials; i++ {
		d.Shuffle(seed)
		seed = 0

		hand, err := d.Draw(7)
		if err != nil {
			return nil, err
		}

		hr, err := poker.RankHand(hand)
		if err != nil {
			return nil, err
		}

		dist[hr.Category]++

		if err := d.Return(hand); err != nil {
			return nil, err
		}
	}

	return dist, nil
}

// RankAllHands estimates the equity of every one of the 169 range-grid
// shorthands against a random field. Expensive: 169 full simulations
func RankAllHands(ctx context.Context, fieldSize, trials int) (map[string]*Probabilities, error) {
	result := make(map[string]*Probabilities, 169)
	for _, hand := range poker.ListHandStrings() {
		logrus.WithField("hand", hand).Debug("simulating")

		probs, err := PlayAgainstField(ctx, FieldOptions{
			HoleRange: hand,
			FieldSize: fieldSize,
			Trials:    trials,
		})
		if err != nil {
			return nil, fmt.Errorf("simulating %s: %w", hand, err)
		}

		result[hand] = probs
	}

	return result, nil
}
