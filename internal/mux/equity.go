package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pokerequity-server/pkg/deck"
	"pokerequity-server/pkg/model"
	"pokerequity-server/pkg/poker"
	"pokerequity-server/pkg/poker/equity"
)

type postHeadToHeadPayload struct {
	Hole1  string `json:"hole1"`
	Hole2  string `json:"hole2"`
	Trials int    `json:"trials"`
}

type headToHeadResponse struct {
	Wins   int     `json:"wins"`
	Ties   int     `json:"ties"`
	Losses int     `json:"losses"`
	Trials int     `json:"trials"`
	Win    float64 `json:"win"`
	Tie    float64 `json:"tie"`
	Loss   float64 `json:"loss"`

	SimulationID *uuid.UUID `json:"simulationId,omitempty"`
}

func (m *Mux) postEquityHeadToHead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var hp postHeadToHeadPayload
		if !decodeRequest(w, r, &hp) {
			return
		}

		hole1, err := deck.ParseCards(hp.Hole1)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hole2, err := deck.ParseCards(hp.Hole2)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		trials, ok := m.trials(hp.Trials)
		if !ok {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("trials must be between 1 and %d", m.maxTrials))
			return
		}

		result, err := equity.CompareHeadToHead(r.Context(), hole1, hole2, trials)
		if err != nil {
			writeEquityError(w, err)
			return
		}

		resp := headToHeadResponse{
			Wins:   result.Wins,
			Ties:   result.Ties,
			Losses: result.Losses,
			Trials: result.Total,
			Win:    float64(result.Wins) / float64(result.Total),
			Tie:    float64(result.Ties) / float64(result.Total),
			Loss:   float64(result.Losses) / float64(result.Total),
		}

		if m.store != nil {
			sim := &model.Simulation{
				Kind:      model.SimulationKindHeadToHead,
				Hero:      deck.CardsToString(hole1),
				Villain:   deck.CardsToString(hole2),
				FieldSize: 1,
				Trials:    result.Total,
				Wins:      result.Wins,
				Ties:      result.Ties,
				Losses:    result.Losses,
			}

			if err := m.store.RecordSimulation(r.Context(), sim); err != nil {
				// the result is still good; history is best effort
				logrus.WithError(err).Error("could not record simulation")
			} else {
				resp.SimulationID = &sim.ID
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type postFieldPayload struct {
	Hole      string `json:"hole"`
	HoleRange string `json:"holeRange"`
	FieldSize int    `json:"fieldSize"`
	Board     string `json:"board"`
	Trials    int    `json:"trials"`
}

type fieldResponse struct {
	Win    float64 `json:"win"`
	Tie    float64 `json:"tie"`
	Loss   float64 `json:"loss"`
	Trials int     `json:"trials"`

	SimulationID *uuid.UUID `json:"simulationId,omitempty"`
}

func (m *Mux) postEquityField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fp postFieldPayload
		if !decodeRequest(w, r, &fp) {
			return
		}

		opts, hero, ok := m.fieldOptions(w, fp)
		if !ok {
			return
		}

		probs, err := equity.PlayAgainstField(r.Context(), opts)
		if err != nil {
			writeEquityError(w, err)
			return
		}

		resp := fieldResponse{
			Win:    probs.Win,
			Tie:    probs.Tie,
			Loss:   probs.Loss,
			Trials: opts.Trials,
		}

		if m.store != nil {
			sim := simulationFromField(hero, fp.Board, opts, probs)
			if err := m.store.RecordSimulation(r.Context(), sim); err != nil {
				logrus.WithError(err).Error("could not record simulation")
			} else {
				resp.SimulationID = &sim.ID
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// fieldOptions validates the payload and builds the simulation options. The
// returned hero string is what the history record stores, a card list for a
// concrete hole or the range shorthand otherwise
func (m *Mux) fieldOptions(w http.ResponseWriter, fp postFieldPayload) (equity.FieldOptions, string, bool) {
	opts := equity.FieldOptions{
		HoleRange: fp.HoleRange,
		FieldSize: fp.FieldSize,
		Workers:   m.workers,
	}

	hero := fp.HoleRange

	if fp.Hole != "" {
		hole, err := deck.ParseCards(fp.Hole)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return opts, "", false
		}

		opts.Hole = hole
		hero = deck.CardsToString(hole)
	}

	if fp.Board != "" {
		board, err := deck.ParseCards(fp.Board)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return opts, "", false
		}

		opts.Board = board
	}

	trials, ok := m.trials(fp.Trials)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, fmt.Errorf("trials must be between 1 and %d", m.maxTrials))
		return opts, "", false
	}

	opts.Trials = trials
	return opts, hero, true
}

// simulationFromField converts estimated probabilities back into counts for
// the history record. Losses absorb the rounding so the counts sum to trials
func simulationFromField(hero, board string, opts equity.FieldOptions, probs *equity.Probabilities) *model.Simulation {
	wins := int(probs.Win*float64(opts.Trials) + 0.5)
	ties := int(probs.Tie*float64(opts.Trials) + 0.5)

	return &model.Simulation{
		Kind:      model.SimulationKindField,
		Hero:      hero,
		Board:     board,
		FieldSize: opts.FieldSize,
		Trials:    opts.Trials,
		Wins:      wins,
		Ties:      ties,
		Losses:    opts.Trials - wins - ties,
	}
}

func writeEquityError(w http.ResponseWriter, err error) {
	if errors.Is(err, equity.ErrInvalidOptions) ||
		errors.Is(err, poker.ErrMalformedHandString) ||
		errors.Is(err, deck.ErrCardNotFound) {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func (m *Mux) getSimulations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.store == nil {
			writeJSONError(w, http.StatusServiceUnavailable, errors.New("simulation history is not enabled"))
			return
		}

		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sims, err := m.store.GetSimulations(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, sims)
	}
}

func (m *Mux) getSimulationUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.store == nil {
			writeJSONError(w, http.StatusServiceUnavailable, errors.New("simulation history is not enabled"))
			return
		}

		id, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sim, err := m.store.GetSimulation(r.Context(), id)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sim)
	}
}
