package poker

import (
	"errors"
	"fmt"

	"pokerequity-server/pkg/deck"
)

// ErrMalformedHandString is an error when a range shorthand does not match
// the 169-entry grid grammar
var ErrMalformedHandString = errors.New("malformed hand string")

// HandString is a hole-card shorthand from the 169-entry range grid: two rank
// characters, high then low, suffixed "s" for suited or "o" for offsuit, or a
// doubled character for a pocket pair ("AKs", "T9o", "QQ")
type HandString struct {
	High   int
	Low    int
	Suited bool
}

// Pair returns true for a pocket pair
func (h *HandString) Pair() bool {
	return h.High == h.Low
}

func (h *HandString) String() string {
	s := deck.RankString(h.High) + deck.RankString(h.Low)
	if h.Pair() {
		return s
	}

	if h.Suited {
		return s + "s"
	}

	return s + "o"
}

// ParseHandString parses the canonical form of a range shorthand.
// String() round-trips exactly with ParseHandString
func ParseHandString(s string) (*HandString, error) {
	if len(s) < 2 || len(s) > 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHandString, s)
	}

	high, err := deck.RankFromString(s[0:1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHandString, s)
	}

	low, err := deck.RankFromString(s[1:2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHandString, s)
	}

	if high == low {
		if len(s) != 2 {
			return nil, fmt.Errorf("%w: %q: a pocket pair takes no suffix", ErrMalformedHandString, s)
		}

		return &HandString{High: high, Low: low}, nil
	}

	if deck.RankLess(high, low) {
		return nil, fmt.Errorf("%w: %q: ranks must be high then low", ErrMalformedHandString, s)
	}

	if len(s) != 3 {
		return nil, fmt.Errorf("%w: %q: unpaired ranks need an s or o suffix", ErrMalformedHandString, s)
	}

	switch s[2] {
	case 's':
		return &HandString{High: high, Low: low, Suited: true}, nil
	case 'o':
		return &HandString{High: high, Low: low}, nil
	default:
		return nil, fmt.Errorf("%w: %q: unknown suffix", ErrMalformedHandString, s)
	}
}

// gridRanks is the rank order of the range grid, strongest first
var gridRanks = []int{deck.Ace, deck.King, deck.Queen, deck.Jack, 10, 9, 8, 7, 6, 5, 4, 3, 2}

// ListHandStrings returns all 169 canonical shorthands in range-grid order:
// row-major over a 13x13 grid, pairs on the diagonal, suited combinations
// above it and offsuit below. 13 pairs + 78 suited + 78 offsuit
func ListHandStrings() []string {
	result := make([]string, 0, 169)
	for i, r := range gridRanks {
		for j, s := range gridRanks {
			switch {
			case i > j:
				result = append(result, deck.RankString(s)+deck.RankString(r)+"o")
			case i == j:
				result = append(result, deck.RankString(r)+deck.RankString(s))
			default:
				result = append(result, deck.RankString(r)+deck.RankString(s)+"s")
			}
		}
	}

	return result
}

// FindInDeck resolves the shorthand to two concrete cards still in the deck,
// removing them when remove is true. Returns ErrCardNotFound (wrapped) when
// the remaining deck cannot satisfy the shorthand
func (h *HandString) FindInDeck(d *deck.Deck, remove bool) ([]*deck.Card, error) {
	var hole []*deck.Card

	if h.Pair() {
		matches := cardsOfRank(d, h.High)
		if len(matches) >= 2 {
			hole = matches[:2]
		}
	} else {
		highs := cardsOfRank(d, h.High)
		lows := cardsOfRank(d, h.Low)

	search:
		for _, c1 := range highs {
			for _, c2 := range lows {
				if (c1.Suit == c2.Suit) == h.Suited {
					hole = []*deck.Card{c1, c2}
					break search
				}
			}
		}
	}

	if hole == nil {
		return nil, fmt.Errorf("%w: no %s in remaining deck", deck.ErrCardNotFound, h)
	}

	if remove {
		for _, c := range hole {
			if err := d.Remove(c); err != nil {
				return nil, err
			}
		}
	}

	return hole, nil
}

func cardsOfRank(d *deck.Deck, rank int) []*deck.Card {
	cards := make([]*deck.Card, 0, 4)
	for _, c := range d.Cards {
		if c.Rank == rank {
			cards = append(cards, c)
		}
	}

	return cards
}
