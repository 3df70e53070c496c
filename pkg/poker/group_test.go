package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerequity-server/pkg/deck"
)

func TestGroupByRank(t *testing.T) {
	a := assert.New(t)

	rcs := groupByRank(deck.CardsFromString("2s,2h,Kd,As,9c,9h,9d"))
	a.Len(rcs, 4)

	// descending card strength with the ace first
	a.Equal(deck.Ace, rcs[0].Rank)
	a.Equal(deck.King, rcs[1].Rank)
	a.Equal(9, rcs[2].Rank)
	a.Equal(2, rcs[3].Rank)

	a.Equal(1, rcs[0].Size())
	a.Equal(3, rcs[2].Size())
	a.Equal(2, rcs[3].Size())
}

func TestGroupBySuit(t *testing.T) {
	a := assert.New(t)

	scs := groupBySuit(deck.CardsFromString("2s,3s,4s,5s,6s,7h,8d"))
	a.Len(scs, 3)

	bySuit := make(map[deck.Suit]*SuitClass)
	for _, sc := range scs {
		bySuit[sc.Suit] = sc
	}

	a.Equal(5, bySuit[deck.Spades].Size())
	a.Equal(1, bySuit[deck.Hearts].Size())
	a.Equal(1, bySuit[deck.Diamonds].Size())
}

func TestRankClass_Cards(t *testing.T) {
	a := assert.New(t)

	rc := NewRankClass(9, deck.Hearts, deck.Clubs)
	cards := rc.Cards()
	a.Len(cards, 2)
	for _, c := range cards {
		a.Equal(9, c.Rank)
	}

	one := rc.PickOne()
	a.Equal(9, one.Rank)

	assert.Panics(t, func() {
		NewRankClass(5).PickOne()
	})
}

func TestSuitClass_Cards(t *testing.T) {
	a := assert.New(t)

	sc := NewSuitClass(deck.Spades, 2, deck.King, deck.Ace, 9)
	cards := sc.Cards()
	a.Equal("As,Ks,9s,2s", deck.CardsToString(cards))

	rcs := sc.RankClasses()
	a.Len(rcs, 4)
	a.Equal(deck.Ace, rcs[0].Rank)
	a.Equal(2, rcs[3].Rank)

	assert.Panics(t, func() {
		NewSuitClass(deck.Hearts).PickOne()
	})
}
