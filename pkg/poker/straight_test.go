package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerequity-server/pkg/deck"
)

func findStraightIn(s string) []*deck.Card {
	return findStraight(groupByRank(deck.CardsFromString(s)))
}

func TestFindStraight(t *testing.T) {
	a := assert.New(t)

	run := findStraightIn("2s,3h,4d,5c,6s,9h,Kd")
	a.NotNil(run)
	a.Equal(6, run[4].Rank)

	run = findStraightIn("Ts,Jh,Qd,Kc,As,2h,3d")
	a.NotNil(run)
	a.Equal(deck.Ace, run[4].Rank)

	a.Nil(findStraightIn("2s,3h,4d,6c,7s,9h,Kd"))
	a.Nil(findStraightIn("2s,2h,4d,4c,7s,7h,Kd"))
}

func TestFindStraight_wheel(t *testing.T) {
	a := assert.New(t)

	run := findStraightIn("As,2h,3d,4c,5s,9h,Kd")
	a.NotNil(run)

	// lowest to highest with the ace at the bottom; the top card is the 5
	a.Equal(deck.Ace, run[0].Rank)
	a.Equal(5, run[4].Rank)
}

// a wheel must still be found when a disconnected higher rank group sits
// between the ace and the 2-5 run in the sorted classes
func TestFindStraight_wheelWithDisconnectedHighGroup(t *testing.T) {
	a := assert.New(t)

	// six distinct ranks: the pair of nines separates A from 5,4,3,2
	run := findStraightIn("As,2h,3d,4c,5s,9h,9d")
	a.NotNil(run)
	a.Equal(5, run[4].Rank)

	// single disconnected high card
	run = findStraightIn("As,2h,3d,4c,5s,Jh,8d")
	a.NotNil(run)
	a.Equal(5, run[4].Rank)
}

func TestFindStraight_prefersHigherRun(t *testing.T) {
	a := assert.New(t)

	// wheel and 3-7 run overlap; the 7-high run wins
	run := findStraightIn("As,2h,3d,4c,5s,6h,7d")
	a.NotNil(run)
	a.Equal(7, run[4].Rank)
	a.Equal(3, run[0].Rank)

	// six cards of a run: take the top five
	run = findStraightIn("9s,Th,Jd,Qc,Ks,8h,2d")
	a.NotNil(run)
	a.Equal(deck.King, run[4].Rank)
	a.Equal(9, run[0].Rank)
}

// the ace connects only to the king and the 2; a run may not wrap past it
func TestFindStraight_noWraparound(t *testing.T) {
	a := assert.New(t)

	a.Nil(findStraightIn("Qs,Kh,Ad,2c,3s,8h,9d"))
	a.Nil(findStraightIn("Js,Qh,Kd,Ac,2s,8h,9d"))
}
