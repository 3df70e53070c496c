package poker

import (
	"errors"
	"fmt"
	"sort"

	"pokerequity-server/pkg/deck"
)

// ErrInvalidHandSize is an error when RankHand is given anything other than
// seven distinct cards
var ErrInvalidHandSize = errors.New("hand must contain exactly 7 distinct cards")

// handSize is the only supported evaluation size
const handSize = 7

// RankHand classifies a seven-card hand into its strongest category. The
// detectors are tried from the strongest category down and the first match
// wins; high card always matches, so every valid input classifies.
func RankHand(cards []*deck.Card) (*HandRank, error) {
	if len(cards) != handSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	seen := make(map[*deck.Card]bool, handSize)
	for _, card := range cards {
		canonical := deck.GetCard(card.Rank, card.Suit)
		if seen[canonical] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidHandSize, deck.CardToString(card))
		}

		seen[canonical] = true
	}

	rcs := groupByRank(cards)
	scs := groupBySuit(cards)

	if hr := getStraightFlush(scs); hr != nil {
		return hr, nil
	}

	if hr := getQuads(rcs); hr != nil {
		return hr, nil
	}

	if hr := getFullHouse(rcs); hr != nil {
		return hr, nil
	}

	if hr := getFlush(scs); hr != nil {
		return hr, nil
	}

	if hr := getStraight(rcs); hr != nil {
		return hr, nil
	}

	if hr := getTrips(rcs); hr != nil {
		return hr, nil
	}

	if hr := getTwoPair(rcs); hr != nil {
		return hr, nil
	}

	if hr := getPair(rcs); hr != nil {
		return hr, nil
	}

	return getHighCard(cards), nil
}

// getStraightFlush runs straight detection within each suit holding five or
// more cards. At most one suit can hold five of seven cards, so at most one
// candidate exists
func getStraightFlush(scs []*SuitClass) *HandRank {
	for _, sc := range scs {
		if sc.Size() < 5 {
			continue
		}

		if run := findStraight(sc.RankClasses()); run != nil {
			return &HandRank{Category: StraightFlush, Cards: run}
		}
	}

	return nil
}

// getQuads finds the rank class with all four suits, plus the single highest
// remaining card as the kicker
func getQuads(rcs []*RankClass) *HandRank {
	var quads *RankClass
	kickers := make([]*RankClass, 0, len(rcs))
	for _, rc := range rcs {
		if rc.Size() == 4 {
			quads = rc
		} else {
			kickers = append(kickers, rc)
		}
	}

	if quads == nil {
		return nil
	}

	cards := append(quads.Cards(), kickers[0].PickOne())
	return &HandRank{Category: FourOfAKind, Cards: cards}
}

// getFullHouse requires an independent trips result and pair result over the
// rank classes; a second three-of-a-kind does not stand in for the pair
func getFullHouse(rcs []*RankClass) *HandRank {
	trips := getTrips(rcs)
	if trips == nil {
		return nil
	}

	pair := getPair(rcs)
	if pair == nil {
		return nil
	}

	cards := append(trips.Cards[:3:3], pair.Cards[:2]...)
	return &HandRank{Category: FullHouse, Cards: cards}
}

// getFlush finds the suit class with five or more cards and takes its five
// highest, strongest first
func getFlush(scs []*SuitClass) *HandRank {
	for _, sc := range scs {
		if sc.Size() >= 5 {
			return &HandRank{Category: Flush, Cards: sc.Cards()[:5]}
		}
	}

	return nil
}

func getStraight(rcs []*RankClass) *HandRank {
	if run := findStraight(rcs); run != nil {
		return &HandRank{Category: Straight, Cards: run}
	}

	return nil
}

// getTrips finds the strongest rank class with exactly three cards, plus the
// two highest cards outside it as kickers
func getTrips(rcs []*RankClass) *HandRank {
	var trips []*deck.Card
	kickers := make([]*deck.Card, 0, handSize)
	for _, rc := range rcs {
		if rc.Size() == 3 && trips == nil {
			trips = rc.Cards()
		} else {
			kickers = append(kickers, rc.Cards()...)
		}
	}

	if trips == nil {
		return nil
	}

	return &HandRank{Category: ThreeOfAKind, Cards: append(trips, kickers[:2]...)}
}

// getTwoPair finds the two strongest rank classes with exactly two cards
// each, plus the single highest remaining card as the kicker
func getTwoPair(rcs []*RankClass) *HandRank {
	pairs := make([]*RankClass, 0, 3)
	kickers := make([]*RankClass, 0, len(rcs))
	for _, rc := range rcs {
		if rc.Size() == 2 && len(pairs) < 2 {
			pairs = append(pairs, rc)
		} else {
			kickers = append(kickers, rc)
		}
	}

	if len(pairs) < 2 {
		return nil
	}

	cards := append(pairs[0].Cards(), pairs[1].Cards()...)
	cards = append(cards, kickers[0].PickOne())
	return &HandRank{Category: TwoPair, Cards: cards}
}

// getPair finds the strongest rank class with exactly two cards, plus the
// three highest cards outside it as kickers
func getPair(rcs []*RankClass) *HandRank {
	var pair []*deck.Card
	kickers := make([]*deck.Card, 0, handSize)
	for _, rc := range rcs {
		if rc.Size() == 2 && pair == nil {
			pair = rc.Cards()
		} else {
			kickers = append(kickers, rc.Cards()...)
		}
	}

	if pair == nil {
		return nil
	}

	return &HandRank{Category: OnePair, Cards: append(pair, kickers[:3]...)}
}

// getHighCard takes the five highest of the seven cards, strongest first.
// It never fails
func getHighCard(cards []*deck.Card) *HandRank {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].Less(sorted[i])
	})

	return &HandRank{Category: HighCard, Cards: sorted[:5]}
}
