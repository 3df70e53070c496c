package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerequity-server/pkg/deck"
)

func TestCategory_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("High card", HighCard.String())
	a.Equal("Pair", OnePair.String())
	a.Equal("Straight flush", StraightFlush.String())

	assert.PanicsWithValue(t, "unknown category: -1", func() {
		_ = Category(-1).String()
	})
}

func TestHandRank_String(t *testing.T) {
	hr, err := RankHand(deck.CardsFromString("7s,7h,7d,7c,Ks,2h,3d"))
	assert.NoError(t, err)
	assert.Equal(t, "Four of a kind[7s,7c,7h,7d,Ks]", hr.String())
}
