package mux

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pokerequity-server/pkg/model"
)

// memoryStore is an in-memory SimulationStore for handler tests
type memoryStore struct {
	sims []*model.Simulation
}

func (s *memoryStore) RecordSimulation(_ context.Context, sim *model.Simulation) error {
	if sim.ID == uuid.Nil {
		sim.ID = uuid.New()
	}

	sim.Created = time.Now()
	s.sims = append([]*model.Simulation{sim}, s.sims...)
	return nil
}

func (s *memoryStore) GetSimulation(_ context.Context, id uuid.UUID) (*model.Simulation, error) {
	for _, sim := range s.sims {
		if sim.ID == id {
			return sim, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (s *memoryStore) GetSimulations(_ context.Context, start int64, rows int) ([]*model.Simulation, error) {
	if start >= int64(len(s.sims)) {
		return []*model.Simulation{}, nil
	}

	end := int(start) + rows
	if end > len(s.sims) {
		end = len(s.sims)
	}

	return s.sims[start:end], nil
}

func TestNewMux(t *testing.T) {
	a := assert.New(t)

	m := NewMux("0.0.0", nil)
	a.NotNil(m)
	a.Nil(m.store)
	a.True(m.defaultTrials > 0)
	a.True(m.maxTrials >= m.defaultTrials)
}

func TestMux_trials(t *testing.T) {
	a := assert.New(t)

	m := &Mux{defaultTrials: 100, maxTrials: 1000}

	n, ok := m.trials(0)
	a.True(ok)
	a.Equal(100, n)

	n, ok = m.trials(500)
	a.True(ok)
	a.Equal(500, n)

	_, ok = m.trials(1001)
	a.False(ok)

	_, ok = m.trials(-1)
	a.False(ok)
}
