package mux

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pokerequity-server/pkg/poker/equity"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60

// streamBatches is how many progress frames a full run produces
const streamBatches = 50

type fieldProgress struct {
	Completed int     `json:"completed"`
	Trials    int     `json:"trials"`
	Win       float64 `json:"win"`
	Tie       float64 `json:"tie"`
	Loss      float64 `json:"loss"`
	Done      bool    `json:"done"`
}

// getEquityFieldWS streams incremental field-equity estimates over a
// websocket. The simulation parameters arrive as query parameters; each
// progress frame carries the cumulative estimate so far
func (m *Mux) getEquityFieldWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		fp := postFieldPayload{
			Hole:      r.FormValue("hole"),
			HoleRange: r.FormValue("holeRange"),
			Board:     r.FormValue("board"),
		}

		if v := r.FormValue("fieldSize"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}
			fp.FieldSize = n
		}

		if v := r.FormValue("trials"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}
			fp.Trials = n
		}

		opts, _, ok := m.fieldOptions(w, fp)
		if !ok {
			return
		}

		if opts.FieldSize <= 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("field size must be positive"))
			return
		}

		// pin a range to concrete cards so every batch plays the same hole
		hole, err := opts.Hero()
		if err != nil {
			writeEquityError(w, err)
			return
		}
		opts.Hole = hole
		opts.HoleRange = ""

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		// the client sends no data frames; the read loop only notices the close
		readerDone := make(chan struct{})
		go func() {
			defer close(readerDone)
			for {
				if _, _, err := conn.NextReader(); err != nil {
					cancel()
					return
				}
			}
		}()

		m.streamFieldEquity(ctx, conn, opts, readerDone)
	}
}

func (m *Mux) streamFieldEquity(ctx context.Context, conn *websocket.Conn, opts equity.FieldOptions, readerDone <-chan struct{}) {
	total := opts.Trials

	var completed int
	var winSum, tieSum, lossSum float64

	for _, batch := range batchSizes(total, streamBatches) {
		batchOpts := opts
		batchOpts.Trials = batch

		probs, err := equity.PlayAgainstField(ctx, batchOpts)
		if err != nil {
			if ctx.Err() == nil {
				logrus.WithError(err).Error("field equity stream failed")
				m.writeStreamClose(conn, websocket.CloseInternalServerErr, err.Error(), readerDone)
			}
			return
		}

		n := float64(batch)
		winSum += probs.Win * n
		tieSum += probs.Tie * n
		lossSum += probs.Loss * n
		completed += batch

		frame := fieldProgress{
			Completed: completed,
			Trials:    total,
			Win:       winSum / float64(completed),
			Tie:       tieSum / float64(completed),
			Loss:      lossSum / float64(completed),
			Done:      completed == total,
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame); err != nil {
			logrus.WithError(err).Error("could not write progress frame")
			return
		}
	}

	m.writeStreamClose(conn, websocket.CloseNormalClosure, "simulation complete", readerDone)
}

func (m *Mux) writeStreamClose(conn *websocket.Conn, code int, reason string, readerDone <-chan struct{}) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))

	// wait for the close frame
	select {
	case <-readerDone:
	case <-time.After(time.Second):
	}
}

// batchSizes splits trials into up to n roughly equal, non-empty batches
func batchSizes(trials, n int) []int {
	if n > trials {
		n = trials
	}

	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = trials / n
	}

	for i := 0; i < trials%n; i++ {
		sizes[i]++
	}

	return sizes
}
