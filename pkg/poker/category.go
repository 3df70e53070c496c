package poker

import (
	"fmt"

	"pokerequity-server/pkg/deck"
)

// Category is a poker hand category, i.e., a full house
type Category int

// Constants for category, weakest to strongest. The numeric value is the
// strength tier used by Compare
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category, weakest first
var Categories = []Category{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// HandRank is a fully-determined categorized hand: the category plus the five
// cards that establish it.
//
// The card order is what the comparator keys on: primary group(s) first and
// kickers last, except straights (and straight flushes) which run lowest to
// highest so the top card sits at the end. A wheel stores A,2,3,4,5 and its
// top card is the 5, which is what makes it the lowest straight.
type HandRank struct {
	Category Category     `json:"category"`
	Cards    []*deck.Card `json:"cards"`
}

func (h *HandRank) String() string {
	return fmt.Sprintf("%s[%s]", h.Category, deck.CardsToString(h.Cards))
}
