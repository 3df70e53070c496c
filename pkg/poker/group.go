package poker

import (
	"fmt"
	"sort"

	"pokerequity-server/pkg/deck"
)

// RankClass is the set of cards of a single rank present in a hand, tracked
// by which suits hold that rank
type RankClass struct {
	Rank  int
	suits map[deck.Suit]bool
}

// NewRankClass returns a rank class for the given rank and suits
func NewRankClass(rank int, suits ...deck.Suit) *RankClass {
	rc := &RankClass{
		Rank:  rank,
		suits: make(map[deck.Suit]bool),
	}

	for _, suit := range suits {
		rc.suits[suit] = true
	}

	return rc
}

// AddSuit records that the rank is held in the given suit
func (rc *RankClass) AddSuit(suit deck.Suit) {
	rc.suits[suit] = true
}

// Size returns the number of cards in the class
func (rc *RankClass) Size() int {
	return len(rc.suits)
}

// PickOne returns one representative card from the class.
// Panics if the class is empty; detectors must length-check before picking
func (rc *RankClass) PickOne() *deck.Card {
	for _, suit := range deck.Suits {
		if rc.suits[suit] {
			return deck.GetCard(rc.Rank, suit)
		}
	}

	panic(fmt.Sprintf("cannot pick from empty rank class (rank %d)", rc.Rank))
}

// Cards materializes the class back into concrete cards
func (rc *RankClass) Cards() []*deck.Card {
	cards := make([]*deck.Card, 0, len(rc.suits))
	for _, suit := range deck.Suits {
		if rc.suits[suit] {
			cards = append(cards, deck.GetCard(rc.Rank, suit))
		}
	}

	return cards
}

func (rc *RankClass) String() string {
	return fmt.Sprintf("RankClass<%s,%d>", deck.RankString(rc.Rank), rc.Size())
}

// SuitClass is the set of cards of a single suit present in a hand, tracked
// by which ranks are held
type SuitClass struct {
	Suit  deck.Suit
	ranks map[int]bool
}

// NewSuitClass returns a suit class for the given suit and ranks
func NewSuitClass(suit deck.Suit, ranks ...int) *SuitClass {
	sc := &SuitClass{
		Suit:  suit,
		ranks: make(map[int]bool),
	}

	for _, rank := range ranks {
		sc.ranks[rank] = true
	}

	return sc
}

// AddRank records that the suit holds the given rank
func (sc *SuitClass) AddRank(rank int) {
	sc.ranks[rank] = true
}

// Size returns the number of cards in the class
func (sc *SuitClass) Size() int {
	return len(sc.ranks)
}

// PickOne returns one representative card from the class.
// Panics if the class is empty; detectors must length-check before picking
func (sc *SuitClass) PickOne() *deck.Card {
	for rank := range sc.ranks {
		return deck.GetCard(rank, sc.Suit)
	}

	panic(fmt.Sprintf("cannot pick from empty suit class (%s)", sc.Suit))
}

// Cards materializes the class back into concrete cards, strongest first
func (sc *SuitClass) Cards() []*deck.Card {
	cards := make([]*deck.Card, 0, len(sc.ranks))
	for rank := range sc.ranks {
		cards = append(cards, deck.GetCard(rank, sc.Suit))
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[j].Less(cards[i])
	})

	return cards
}

// RankClasses splits the suit class into one single-suit rank class per rank,
// strongest first. Used to run straight detection within a suit
func (sc *SuitClass) RankClasses() []*RankClass {
	rcs := make([]*RankClass, 0, len(sc.ranks))
	for rank := range sc.ranks {
		rcs = append(rcs, NewRankClass(rank, sc.Suit))
	}

	sort.Slice(rcs, func(i, j int) bool {
		return deck.RankLess(rcs[j].Rank, rcs[i].Rank)
	})

	return rcs
}

// groupByRank gathers the cards into rank classes sorted in descending card
// strength. The detectors rely on the strongest class appearing first
func groupByRank(cards []*deck.Card) []*RankClass {
	byRank := make(map[int]*RankClass)
	for _, card := range cards {
		rc, ok := byRank[card.Rank]
		if !ok {
			rc = NewRankClass(card.Rank)
			byRank[card.Rank] = rc
		}

		rc.AddSuit(card.Suit)
	}

	rcs := make([]*RankClass, 0, len(byRank))
	for _, rc := range byRank {
		rcs = append(rcs, rc)
	}

	sort.Slice(rcs, func(i, j int) bool {
		return deck.RankLess(rcs[j].Rank, rcs[i].Rank)
	})

	return rcs
}

// groupBySuit gathers the cards into suit classes. The result carries no
// meaningful order
func groupBySuit(cards []*deck.Card) []*SuitClass {
	bySuit := make(map[deck.Suit]*SuitClass)
	for _, card := range cards {
		sc, ok := bySuit[card.Suit]
		if !ok {
			sc = NewSuitClass(card.Suit)
			bySuit[card.Suit] = sc
		}

		sc.AddRank(card.Rank)
	}

	scs := make([]*SuitClass, 0, len(bySuit))
	for _, suit := range deck.Suits {
		if sc, ok := bySuit[suit]; ok {
			scs = append(scs, sc)
		}
	}

	return scs
}
