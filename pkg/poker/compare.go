package poker

import (
	"fmt"

	"pokerequity-server/pkg/deck"
)

// Compare totally orders two categorized hands. It returns a negative number
// if a is weaker than b, zero if they tie, and a positive number if a is
// stronger. Category tier decides first; on a tie the comparison dispatches
// to the category-specific cards.
func Compare(a, b *HandRank) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}

	switch a.Category {
	case StraightFlush, Straight:
		// the top card sits last; a wheel's top is the 5
		return compareRanks(a.Cards[4].Rank, b.Cards[4].Rank)

	case FourOfAKind:
		return compareRanks(a.Cards[0].Rank, b.Cards[0].Rank)

	case FullHouse:
		if c := compareRanks(a.Cards[0].Rank, b.Cards[0].Rank); c != 0 {
			return c
		}
		return compareRanks(a.Cards[3].Rank, b.Cards[3].Rank)

	case Flush, HighCard:
		return compareKickers(a.Cards, b.Cards)

	case ThreeOfAKind:
		// trips rank only; recorded kickers intentionally do not break ties
		return compareRanks(a.Cards[0].Rank, b.Cards[0].Rank)

	case TwoPair:
		if c := compareRanks(a.Cards[0].Rank, b.Cards[0].Rank); c != 0 {
			return c
		}
		if c := compareRanks(a.Cards[2].Rank, b.Cards[2].Rank); c != 0 {
			return c
		}
		return compareRanks(a.Cards[4].Rank, b.Cards[4].Rank)

	case OnePair:
		if c := compareRanks(a.Cards[0].Rank, b.Cards[0].Rank); c != 0 {
			return c
		}
		return compareKickers(a.Cards[2:], b.Cards[2:])

	default:
		panic(fmt.Sprintf("unknown category: %d", a.Category))
	}
}

// compareRanks orders two raw ranks with the ace high
func compareRanks(a, b int) int {
	if a == b {
		return 0
	}

	if deck.RankLess(a, b) {
		return -1
	}

	return 1
}

// compareKickers compares two equal-length card sequences lexicographically,
// highest card first
func compareKickers(a, b []*deck.Card) int {
	for i := range a {
		if c := compareRanks(a[i].Rank, b[i].Rank); c != 0 {
			return c
		}
	}

	return 0
}
