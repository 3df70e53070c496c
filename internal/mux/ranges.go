package mux

import (
	"net/http"

	"pokerequity-server/pkg/poker"
)

// getRanges returns the 169 distinct starting-hand shorthands in grid order
func (m *Mux) getRanges() http.HandlerFunc {
	hands := poker.ListHandStrings()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, hands)
	}
}
