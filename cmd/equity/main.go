package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"pokerequity-server/pkg/deck"
	"pokerequity-server/pkg/poker"
	"pokerequity-server/pkg/poker/equity"
)

var (
	mode      = flag.String("mode", "field", "head-to-head, field, grid or distribution")
	hole      = flag.String("hole", "", "the hero's hole cards, e.g. As,Kd")
	holeRange = flag.String("range", "", "a starting-hand shorthand like AKs or 72o")
	hole2     = flag.String("hole2", "", "the villain's hole cards (head-to-head only)")
	board     = flag.String("board", "", "fixed community cards")
	fieldSize = flag.Int("field", 1, "the number of random opponents")
	trials    = flag.Int("trials", 10000, "the number of Monte Carlo trials")
	seed      = flag.Int64("seed", 1, "the shuffle seed (distribution only)")
)

func main() {
	flag.Parse()

	var err error
	switch *mode {
	case "head-to-head":
		err = runHeadToHead()
	case "field":
		err = runField()
	case "grid":
		err = runGrid()
	case "distribution":
		err = runDistribution()
	default:
		err = fmt.Errorf("unknown mode: %s", *mode)
	}

	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func runHeadToHead() error {
	h1, err := deck.ParseCards(*hole)
	if err != nil {
		return err
	}

	h2, err := deck.ParseCards(*hole2)
	if err != nil {
		return err
	}

	result, err := equity.CompareHeadToHead(context.Background(), h1, h2, *trials)
	if err != nil {
		return err
	}

	total := float64(result.Total)
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"", deck.CardsToString(h1), deck.CardsToString(h2), "Tie"},
		{"Trials", fmt.Sprint(result.Wins), fmt.Sprint(result.Losses), fmt.Sprint(result.Ties)},
		{"Equity", percent(float64(result.Wins) / total), percent(float64(result.Losses) / total), percent(float64(result.Ties) / total)},
	}).Render()
}

func runField() error {
	opts := equity.FieldOptions{
		HoleRange: *holeRange,
		FieldSize: *fieldSize,
		Trials:    *trials,
	}

	if *hole != "" {
		cards, err := deck.ParseCards(*hole)
		if err != nil {
			return err
		}
		opts.Hole = cards
	}

	if *board != "" {
		cards, err := deck.ParseCards(*board)
		if err != nil {
			return err
		}
		opts.Board = cards
	}

	probs, err := equity.PlayAgainstField(context.Background(), opts)
	if err != nil {
		return err
	}

	hero := *holeRange
	if *hole != "" {
		hero = *hole
	}

	pterm.Info.Printfln("%s vs %d random opponent(s), %d trials", hero, *fieldSize, *trials)
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Win", "Tie", "Loss"},
		{percent(probs.Win), percent(probs.Tie), percent(probs.Loss)},
	}).Render()
}

// runGrid simulates all 169 starting hands and renders the win probability
// for each cell of the classic 13x13 grid
func runGrid() error {
	spinner, _ := pterm.DefaultSpinner.Start(
		fmt.Sprintf("simulating 169 hands, %d trials each", *trials))

	probs, err := equity.RankAllHands(context.Background(), *fieldSize, *trials)
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}

	spinner.Success("done")

	hands := poker.ListHandStrings()
	data := make(pterm.TableData, 0, 13)
	for row := 0; row < 13; row++ {
		cells := make([]string, 13)
		for col := 0; col < 13; col++ {
			hand := hands[row*13+col]
			cells[col] = fmt.Sprintf("%-4s %s", hand, percent(probs[hand].Win))
		}

		data = append(data, cells)
	}

	return pterm.DefaultTable.WithData(data).Render()
}

func runDistribution() error {
	dist, err := equity.CategoryDistribution(*trials, *seed)
	if err != nil {
		return err
	}

	data := pterm.TableData{{"Category", "Count", "Frequency"}}
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		category := poker.Categories[i]
		count := dist[category]
		data = append(data, []string{
			category.String(),
			fmt.Sprint(count),
			percent(float64(count) / float64(*trials)),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func percent(p float64) string {
	return strings.TrimSpace(fmt.Sprintf("%6.2f%%", p*100))
}

func init() {
	// the equity package logs per-hand progress at debug
	if strings.ToLower(os.Getenv("LOG_LEVEL")) == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
