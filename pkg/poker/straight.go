package poker

import "pokerequity-server/pkg/deck"

// Straight adjacency treats the ranks as a 13-cycle: 2-3-...-K-A-2. The ace's
// only extra neighbors are the king and the 2; this adjacency exists solely
// for detecting runs and never feeds magnitude comparisons.
//
// Candidate runs are probed from the strongest top card down, so when a wheel
// overlaps a higher run the higher run wins, and the wheel itself is only
// found last. This formulation handles a wheel that co-exists with a
// disconnected higher rank group, which a linear scan over the sorted rank
// classes can miss.

// straightWindows holds every possible 5-rank run, strongest top first.
// Broadway ends with the ace; the wheel starts with it
var straightWindows = buildStraightWindows()

func buildStraightWindows() [][5]int {
	windows := make([][5]int, 0, 10)

	// broadway: T J Q K A
	windows = append(windows, [5]int{10, deck.Jack, deck.Queen, deck.King, deck.Ace})

	// king-high down to six-high
	for top := deck.King; top >= 6; top-- {
		var w [5]int
		for i := 0; i < 5; i++ {
			w[i] = top - 4 + i
		}
		windows = append(windows, w)
	}

	// the wheel: A 2 3 4 5
	windows = append(windows, [5]int{deck.Ace, 2, 3, 4, 5})

	return windows
}

// findStraight looks for the strongest 5-card run among the rank classes.
// The returned cards are ordered lowest to highest, one representative per
// rank, so the last card is the top of the straight. For a wheel that top is
// the 5, never the ace. Returns nil if no straight exists
func findStraight(rcs []*RankClass) []*deck.Card {
	if len(rcs) < 5 {
		return nil
	}

	byRank := make(map[int]*RankClass, len(rcs))
	for _, rc := range rcs {
		byRank[rc.Rank] = rc
	}

	for _, window := range straightWindows {
		run := make([]*deck.Card, 0, 5)
		for _, rank := range window {
			rc, ok := byRank[rank]
			if !ok {
				run = nil
				break
			}

			run = append(run, rc.PickOne())
		}

		if run != nil {
			return run
		}
	}

	return nil
}
