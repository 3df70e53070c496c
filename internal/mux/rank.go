package mux

import (
	"net/http"

	"pokerequity-server/pkg/deck"
	"pokerequity-server/pkg/poker"
)

type postRankPayload struct {
	Cards string `json:"cards"`
}

type rankResponse struct {
	Category string `json:"category"`
	Tier     int    `json:"tier"`
	Cards    string `json:"cards"`
}

func (m *Mux) postRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rp postRankPayload
		if !decodeRequest(w, r, &rp) {
			return
		}

		cards, err := deck.ParseCards(rp.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hr, err := poker.RankHand(cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, rankResponse{
			Category: hr.Category.String(),
			Tier:     int(hr.Category),
			Cards:    deck.CardsToString(hr.Cards),
		})
	}
}
