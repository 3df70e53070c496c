package model

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pokerequity-server/pkg/db"
)

// simulation kinds
const (
	SimulationKindHeadToHead = "head-to-head"
	SimulationKindField      = "field"
)

const simulationColumns = `
simulations.id,
simulations.kind,
simulations.hero,
simulations.villain,
simulations.board,
simulations.field_size,
simulations.trials,
simulations.wins,
simulations.ties,
simulations.losses,
simulations.created`

// Simulation is a record in the `simulations` table: one completed equity run
type Simulation struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Hero      string    `json:"hero"`
	Villain   string    `json:"villain,omitempty"`
	Board     string    `json:"board,omitempty"`
	FieldSize int       `json:"fieldSize"`
	Trials    int       `json:"trials"`
	Wins      int       `json:"wins"`
	Ties      int       `json:"ties"`
	Losses    int       `json:"losses"`
	Created   time.Time `json:"created"`
}

func getSimulationByRow(row db.Scanner) (*Simulation, error) {
	var sim Simulation
	if err := row.Scan(&sim.ID, &sim.Kind, &sim.Hero, &sim.Villain, &sim.Board, &sim.FieldSize,
		&sim.Trials, &sim.Wins, &sim.Ties, &sim.Losses, &sim.Created); err != nil {
		return nil, err
	}

	return &sim, nil
}

// PostgresSimulationStore records simulations in Postgres
type PostgresSimulationStore struct{}

// RecordSimulation persists a completed simulation. A zero ID is assigned one
func (PostgresSimulationStore) RecordSimulation(ctx context.Context, sim *Simulation) error {
	const query = `
INSERT INTO simulations (id, kind, hero, villain, board, field_size, trials, wins, ties, losses)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING created`

	if sim.ID == uuid.Nil {
		sim.ID = uuid.New()
	}

	row := db.Instance().QueryRowContext(ctx, query, sim.ID, sim.Kind, sim.Hero, sim.Villain,
		sim.Board, sim.FieldSize, sim.Trials, sim.Wins, sim.Ties, sim.Losses)
	return row.Scan(&sim.Created)
}

// GetSimulations returns simulations in reverse-chronological order
func (PostgresSimulationStore) GetSimulations(ctx context.Context, start int64, rows int) ([]*Simulation, error) {
	const query = `
SELECT ` + simulationColumns + `
FROM simulations
ORDER BY created DESC, id
OFFSET $1 LIMIT $2`

	res, err := db.Instance().QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	sims := make([]*Simulation, 0, rows)
	for res.Next() {
		sim, err := getSimulationByRow(res)
		if err != nil {
			return nil, err
		}

		sims = append(sims, sim)
	}

	return sims, res.Err()
}

// GetSimulation returns a single simulation by its ID
func (PostgresSimulationStore) GetSimulation(ctx context.Context, id uuid.UUID) (*Simulation, error) {
	const query = `
SELECT ` + simulationColumns + `
FROM simulations
WHERE id = $1`

	return getSimulationByRow(db.Instance().QueryRowContext(ctx, query, id))
}
