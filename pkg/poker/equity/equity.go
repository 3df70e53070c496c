package equity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"pokerequity-server/internal/rng"
	"pokerequity-server/pkg/deck"
	"pokerequity-server/pkg/poker"
)

// ErrInvalidOptions is an error when a simulation is misconfigured
var ErrInvalidOptions = errors.New("invalid simulation options")

const boardSize = 5
const holeSize = 2

// Result holds the raw outcome counts of a head-to-head simulation.
// Wins + Losses + Ties always equals Total
type Result struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
	Total  int `json:"total"`
}

// Probabilities is an equity estimate. Win + Tie + Loss sums to 1 within
// trial-count rounding
type Probabilities struct {
	Win  float64 `json:"win"`
	Tie  float64 `json:"tie"`
	Loss float64 `json:"loss"`
}

// tally is a partial outcome count from one worker. Summing tallies is
// commutative, so workers need no ordering
type tally struct {
	wins, losses, ties int
}

func (t *tally) add(other tally) {
	t.wins += other.wins
	t.losses += other.losses
	t.ties += other.ties
}

// CompareHeadToHead plays two hole hands against each other for the given
// number of trials, drawing a fresh random board each trial. The trials are
// split across one worker per CPU, each owning a private deck
func CompareHeadToHead(ctx context.Context, hole1, hole2 []*deck.Card, trials int) (*Result, error) {
	if len(hole1) != holeSize || len(hole2) != holeSize {
		return nil, fmt.Errorf("%w: each hole must have exactly %d cards", ErrInvalidOptions, holeSize)
	}

	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive", ErrInvalidOptions)
	}

	total, err := runTrials(ctx, trials, 0, func(d *deck.Deck) error {
		// duplicate cards between the holes surface here as ErrCardNotFound
		for _, card := range append(hole1[:holeSize:holeSize], hole2...) {
			if err := d.Remove(card); err != nil {
				return err
			}
		}

		return nil
	}, func(d *deck.Deck) (outcome, error) {
		board, err := d.Draw(boardSize)
		if err != nil {
			return 0, err
		}
		defer func() {
			_ = d.Return(board)
		}()

		h1, err := poker.RankHand(append(board[:boardSize:boardSize], hole1...))
		if err != nil {
			return 0, err
		}

		h2, err := poker.RankHand(append(board[:boardSize:boardSize], hole2...))
		if err != nil {
			return 0, err
		}

		switch cmp := poker.Compare(h1, h2); {
		case cmp > 0:
			return outcomeWin, nil
		case cmp < 0:
			return outcomeLoss, nil
		default:
			return outcomeTie, nil
		}
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Wins:   total.wins,
		Losses: total.losses,
		Ties:   total.ties,
		Total:  trials,
	}, nil
}

// FieldOptions configures PlayAgainstField
type FieldOptions struct {
	// Hole holds the hero's two concrete cards. Mutually exclusive with HoleRange
	Hole []*deck.Card

	// HoleRange is a 169-grid shorthand like "AKs"; it is resolved to concrete
	// cards from the remaining deck once, before the first trial
	HoleRange string

	// FieldSize is the number of random opponents
	FieldSize int

	// Board fixes up to five community cards; the rest are drawn per trial
	Board []*deck.Card

	Trials int

	// Workers caps the parallel workers; defaults to the CPU count
	Workers int
}

// Hero returns the hero's concrete hole cards, resolving a range shorthand
// against a deck that already excludes the fixed board. PlayAgainstField
// performs the resolution itself; callers splitting a run into batches should
// resolve once up front so every batch plays the same cards
func (o *FieldOptions) Hero() ([]*deck.Card, error) {
	if len(o.Hole) > 0 {
		if o.HoleRange != "" {
			return nil, fmt.Errorf("%w: provide a hole or a hole range, not both", ErrInvalidOptions)
		}

		if len(o.Hole) != holeSize {
			return nil, fmt.Errorf("%w: hole must have exactly %d cards", ErrInvalidOptions, holeSize)
		}

		return o.Hole, nil
	}

	if o.HoleRange == "" {
		return nil, fmt.Errorf("%w: a hole or a hole range is required", ErrInvalidOptions)
	}

	hs, err := poker.ParseHandString(o.HoleRange)
	if err != nil {
		return nil, err
	}

	scratch := deck.New()
	for _, card := range o.Board {
		if err := scratch.Remove(card); err != nil {
			return nil, err
		}
	}

	return hs.FindInDeck(scratch, false)
}

// PlayAgainstField plays the hero's hole against fieldSize random opponent
// holes, filling out the board each trial, and estimates win/tie/loss
// probabilities. The hero loses a trial if any opponent strictly beats it,
// ties if none beat it but at least one matches it, and wins otherwise
func PlayAgainstField(ctx context.Context, opts FieldOptions) (*Probabilities, error) {
	if opts.FieldSize <= 0 {
		return nil, fmt.Errorf("%w: field size must be positive", ErrInvalidOptions)
	}

	if opts.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive", ErrInvalidOptions)
	}

	if len(opts.Board) > boardSize {
		return nil, fmt.Errorf("%w: board cannot exceed %d cards", ErrInvalidOptions, boardSize)
	}

	hole, err := opts.Hero()
	if err != nil {
		return nil, err
	}

	toDraw := boardSize - len(opts.Board)

	total, err := runTrials(ctx, opts.Trials, opts.Workers, func(d *deck.Deck) error {
		for _, card := range append(hole[:holeSize:holeSize], opts.Board...) {
			if err := d.Remove(card); err != nil {
				return err
			}
		}

		return nil
	}, func(d *deck.Deck) (outcome, error) {
		opponents := make([][]*deck.Card, opts.FieldSize)
		drawn := make([]*deck.Card, 0, opts.FieldSize*holeSize+toDraw)
		for i := range opponents {
			opp, err := d.Draw(holeSize)
			if err != nil {
				return 0, err
			}

			opponents[i] = opp
			drawn = append(drawn, opp...)
		}

		fill, err := d.Draw(toDraw)
		if err != nil {
			return 0, err
		}
		drawn = append(drawn, fill...)

		defer func() {
			_ = d.Return(drawn)
		}()

		board := append(opts.Board[:len(opts.Board):len(opts.Board)], fill...)

		heroRank, err := poker.RankHand(append(board[:boardSize:boardSize], hole...))
		if err != nil {
			return 0, err
		}

		result := outcomeWin
		for _, opp := range opponents {
			oppRank, err := poker.RankHand(append(board[:boardSize:boardSize], opp...))
			if err != nil {
				return 0, err
			}

			if cmp := poker.Compare(oppRank, heroRank); cmp > 0 {
				return outcomeLoss, nil
			} else if cmp == 0 {
				result = outcomeTie
			}
		}

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	trials := float64(opts.Trials)
	return &Probabilities{
		Win:  float64(total.wins) / trials,
		Tie:  float64(total.ties) / trials,
		Loss: float64(total.losses) / trials,
	}, nil
}

type outcome int

const (
	outcomeWin outcome = iota
	outcomeTie
	outcomeLoss
)

// runTrials splits trials across workers, each with a private freshly-seeded
// deck prepared by setup, and sums the partial tallies. Any trial error
// aborts the whole run; skipping trials would bias the aggregate
func runTrials(ctx context.Context, trials, workers int, setup func(*deck.Deck) error, trial func(*deck.Deck) (outcome, error)) (*tally, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers > trials {
		workers = trials
	}

	type partial struct {
		tally tally
		err   error
	}

	results := make(chan partial, workers)
	var wg sync.WaitGroup
	for _, n := range splitTrials(trials, workers) {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			t, err := runWorker(ctx, n, setup, trial)
			results <- partial{tally: t, err: err}
		}(n)
	}

	wg.Wait()
	close(results)

	var total tally
	for p := range results {
		if p.err != nil {
			return nil, p.err
		}

		total.add(p.tally)
	}

	return &total, nil
}

func runWorker(ctx context.Context, trials int, setup func(*deck.Deck) error, trial func(*deck.Deck) (outcome, error)) (tally, error) {
	var t tally

	d := deck.New()
	if err := setup(d); err != nil {
		return t, err
	}

	d.SetSeed(rng.Seed())

	for i := 0; i < trials; i++ {
		select {
		case <-ctx.Done():
			return t, ctx.Err()
		default:
		}

		d.Shuffle(0)

		result, err := trial(d)
		if err != nil {
			return t, err
		}

		switch result {
		case outcomeWin:
			t.wins++
		case outcomeTie:
			t.ties++
		case outcomeLoss:
			t.losses++
		}
	}

	return t, nil
}

// splitTrials distributes trials as evenly as possible
func splitTrials(trials, workers int) []int {
	split := make([]int, workers)
	base := trials / workers
	extra := trials % workers
	for i := range split {
		split[i] = base
		if i < extra {
			split[i]++
		}
	}

	return split
}
