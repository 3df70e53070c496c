package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/google/uuid"

	"pokerequity-server/internal/config"
	"pokerequity-server/pkg/model"
)

// SimulationStore persists completed equity simulations. A nil store disables
// the history endpoints
type SimulationStore interface {
	RecordSimulation(ctx context.Context, sim *model.Simulation) error
	GetSimulation(ctx context.Context, id uuid.UUID) (*model.Simulation, error)
	GetSimulations(ctx context.Context, start int64, rows int) ([]*model.Simulation, error)
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   SimulationStore

	defaultTrials int
	maxTrials     int
	workers       int
}

// NewMux returns a new HTTP mux
func NewMux(version string, store SimulationStore) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:        gmux.NewRouter(),
		version:       version,
		store:         store,
		defaultTrials: cfg.Equity.DefaultTrials,
		maxTrials:     cfg.Equity.MaxTrials,
		workers:       cfg.Equity.Workers,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/rank").Handler(this.postRank())
	r.Methods(http.MethodGet).Path("/ranges").Handler(this.getRanges())

	r.Methods(http.MethodPost).Path("/equity/head-to-head").Handler(this.postEquityHeadToHead())
	r.Methods(http.MethodPost).Path("/equity/field").Handler(this.postEquityField())
	r.Methods(http.MethodGet).Path("/equity/field/ws").Handler(this.getEquityFieldWS())

	r.Methods(http.MethodGet).Path("/simulations").Handler(this.getSimulations())
	r.Methods(http.MethodGet).
		Path("/simulations/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").
		Handler(this.getSimulationUUID())

	return this
}

// trials applies the configured default and cap to a requested trial count
func (m *Mux) trials(requested int) (int, bool) {
	if requested == 0 {
		return m.defaultTrials, true
	}

	if requested < 0 || requested > m.maxTrials {
		return 0, false
	}

	return requested, true
}
