package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerequity-server/pkg/deck"
)

func mustRank(t *testing.T, s string) *HandRank {
	t.Helper()

	hr, err := RankHand(deck.CardsFromString(s))
	assert.NoError(t, err)
	return hr
}

func TestRankHand_size(t *testing.T) {
	a := assert.New(t)

	_, err := RankHand(deck.CardsFromString("As,Ks"))
	a.ErrorIs(err, ErrInvalidHandSize)

	_, err = RankHand(deck.CardsFromString("As,Ks,Qs,Js,Ts,2h,2d,3c"))
	a.ErrorIs(err, ErrInvalidHandSize)

	// duplicate card
	_, err = RankHand(deck.CardsFromString("As,As,Qs,Js,Ts,2h,2d"))
	a.ErrorIs(err, ErrInvalidHandSize)
}

func TestRankHand_royalFlush(t *testing.T) {
	hr := mustRank(t, "As,Ks,Qs,Js,Ts,2h,2d")
	assert.Equal(t, StraightFlush, hr.Category)
	assert.Equal(t, deck.Ace, hr.Cards[4].Rank)
}

func TestRankHand_wheel(t *testing.T) {
	hr := mustRank(t, "As,2s,3h,4d,5c,9s,9h")
	assert.Equal(t, Straight, hr.Category)
	assert.Equal(t, 5, hr.Cards[4].Rank)
}

func TestRankHand_fullHouse(t *testing.T) {
	hr := mustRank(t, "2s,2h,2d,3s,3h,9c,Kd")
	assert.Equal(t, FullHouse, hr.Category)
	assert.Equal(t, 2, hr.Cards[0].Rank)
	assert.Equal(t, 3, hr.Cards[3].Rank)
}

func TestRankHand_quads(t *testing.T) {
	hr := mustRank(t, "7s,7h,7d,7c,Ks,2h,3d")
	assert.Equal(t, FourOfAKind, hr.Category)
	assert.Equal(t, 7, hr.Cards[0].Rank)
	assert.Equal(t, deck.King, hr.Cards[4].Rank)
}

func TestRankHand_flushBeatsStraight(t *testing.T) {
	// qualifies for both a straight and a flush; the flush wins
	hr := mustRank(t, "2s,3s,4s,5s,6h,9s,Ks")
	assert.Equal(t, Flush, hr.Category)
	assert.Equal(t, deck.King, hr.Cards[0].Rank)
}

func TestRankHand_trips(t *testing.T) {
	hr := mustRank(t, "9s,9h,9d,Ks,Jh,4c,2d")
	assert.Equal(t, ThreeOfAKind, hr.Category)
	assert.Equal(t, 9, hr.Cards[0].Rank)
	assert.Equal(t, deck.King, hr.Cards[3].Rank)
	assert.Equal(t, deck.Jack, hr.Cards[4].Rank)
}

// a second three-of-a-kind does not stand in for the pair of a full house
func TestRankHand_twoTripsIsNotAFullHouse(t *testing.T) {
	hr := mustRank(t, "9s,9h,9d,4s,4h,4d,2c")
	assert.Equal(t, ThreeOfAKind, hr.Category)
	assert.Equal(t, 9, hr.Cards[0].Rank)
}

func TestRankHand_twoPair(t *testing.T) {
	hr := mustRank(t, "Ks,Kh,9d,9s,Ah,4c,2d")
	assert.Equal(t, TwoPair, hr.Category)
	assert.Equal(t, deck.King, hr.Cards[0].Rank)
	assert.Equal(t, 9, hr.Cards[2].Rank)
	assert.Equal(t, deck.Ace, hr.Cards[4].Rank)
}

func TestRankHand_threePairsKeepTwoStrongest(t *testing.T) {
	hr := mustRank(t, "As,Ah,Kd,Ks,9h,9c,2d")
	assert.Equal(t, TwoPair, hr.Category)
	assert.Equal(t, deck.Ace, hr.Cards[0].Rank)
	assert.Equal(t, deck.King, hr.Cards[2].Rank)
	assert.Equal(t, 9, hr.Cards[4].Rank)
}

func TestRankHand_pair(t *testing.T) {
	hr := mustRank(t, "9s,9h,As,Kd,Jh,4c,2d")
	assert.Equal(t, OnePair, hr.Category)
	assert.Equal(t, 9, hr.Cards[0].Rank)
	assert.Equal(t, "As,Kd,Jh", deck.CardsToString(hr.Cards[2:]))
}

func TestRankHand_highCard(t *testing.T) {
	hr := mustRank(t, "As,Kd,Jh,9c,7d,4s,2h")
	assert.Equal(t, HighCard, hr.Category)
	assert.Equal(t, "As,Kd,Jh,9c,7d", deck.CardsToString(hr.Cards))
}

// every possible 7-card deal must classify into exactly one category
func TestRankHand_totality(t *testing.T) {
	a := assert.New(t)

	d := deck.New()
	d.Shuffle(1234)
	for i := 0; i < 500; i++ {
		hand, err := d.Draw(7)
		a.NoError(err)

		hr, err := RankHand(hand)
		a.NoError(err)
		a.NotNil(hr)
		a.Len(hr.Cards, 5)
		a.GreaterOrEqual(int(hr.Category), int(HighCard))
		a.LessOrEqual(int(hr.Category), int(StraightFlush))

		a.NoError(d.Return(hand))
		d.Shuffle(0)
	}
}
