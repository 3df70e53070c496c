// Package sessionlog turns an exported poker-session transcript into a
// readable action timeline. The transcript is a line-oriented CSV export
// where the first column holds a quoted description of each event.
//
// The parser is pure text scanning and printing; it has no connection to the
// hand evaluation engine.
package sessionlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is an error when a recognized event line cannot be parsed
var ErrMalformedLine = errors.New("malformed transcript line")

// Parser writes a readable timeline of transcript events
type Parser struct {
	w io.Writer

	startedHand bool
}

// NewParser returns a parser that writes its timeline to w
func NewParser(w io.Writer) *Parser {
	return &Parser{w: w}
}

// Parse reads the transcript and writes the action timeline. Lines that do
// not match any known event are skipped
func (p *Parser) Parse(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if len(record) == 0 {
			continue
		}

		if err := p.parseLine(record[0]); err != nil {
			return err
		}
	}
}

func (p *Parser) parseLine(line string) error {
	switch {
	case strings.HasPrefix(line, "-- starting hand "):
		return p.parseStartingHand(line)
	case strings.HasPrefix(line, "Players stacks: "):
		return p.parsePlayerStacks(line)
	case strings.HasPrefix(line, "Your hand is "):
		p.printCards("Hole", strings.TrimPrefix(line, "Your hand is "))
		return nil
	case strings.Contains(line, "posts a small blind of "):
		return p.parseBlind(line, "SB")
	case strings.Contains(line, "posts a big blind of "):
		return p.parseBlind(line, "BB")
	case strings.Contains(line, "folds"):
		return p.parseSimpleAction(line, "FOLDS")
	case strings.Contains(line, "raises"):
		return p.parseRaise(line)
	case strings.Contains(line, "calls"):
		return p.parseAmountAction(line, "CALLS")
	case strings.Contains(line, "checks"):
		return p.parseSimpleAction(line, "CHECKS")
	case strings.HasPrefix(line, "flop: "):
		return p.parseFlop(line)
	case strings.HasPrefix(line, "turn: "):
		return p.parseStreet(line, "Turn", "turn: ")
	case strings.HasPrefix(line, "river: "):
		return p.parseStreet(line, "River", "river: ")
	case strings.Contains(line, `" shows a `):
		return p.parseShows(line)
	case strings.Contains(line, " wins "):
		return p.parseWins(line)
	case strings.Contains(line, " gained "):
		return p.parseAmountAction(line, "GAINED")
	}

	// unrecognized lines are not part of the timeline
	return nil
}

// readBetween extracts the text between begin and end, searching from start.
// It also returns the offset just past the end marker
func readBetween(line, begin, end string, start int) (string, int, error) {
	beginIdx := strings.Index(line[start:], begin)
	if beginIdx < 0 {
		return "", 0, fmt.Errorf("%w: missing %q in %q", ErrMalformedLine, begin, line)
	}

	from := start + beginIdx + len(begin)
	endIdx := strings.Index(line[from:], end)
	if endIdx < 0 {
		return "", 0, fmt.Errorf("%w: missing %q in %q", ErrMalformedLine, end, line)
	}

	return line[from : from+endIdx], from + endIdx + len(end), nil
}

// playerName extracts the player name from a quoted "name @ id" reference
func playerName(line string) (string, error) {
	name, _, err := readBetween(line, `"`, " @", 0)
	return name, err
}

func lastField(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	amt, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
	}

	return amt, nil
}

func (p *Parser) printAction(name, action, amt, other string) {
	fmt.Fprintf(p.w, "%-9s  %-10s %-10s %s\n", name, action, amt, other)
}

func (p *Parser) printCards(title, cards string) {
	fmt.Fprintf(p.w, "%-10s                                     %s\n", title, cards)
}

func (p *Parser) printSeparator() {
	fmt.Fprintln(p.w, strings.Repeat("-", 80))
}

func (p *Parser) parseStartingHand(line string) error {
	handNo, next, err := readBetween(line, "#", " ", 0)
	if err != nil {
		return err
	}

	dealer, _, err := readBetween(line, `"`, " @", next)
	if err != nil {
		return err
	}

	if p.startedHand {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w)
	}

	p.startedHand = true
	fmt.Fprintf(p.w, "Hand %s: Dealer: %s\n", handNo, dealer)
	return nil
}

func (p *Parser) parsePlayerStacks(line string) error {
	entries := make([]string, 0, 10)
	start := 0
	for strings.Contains(line[start:], "@") {
		name, next, err := readBetween(line, `"`, " @", start)
		if err != nil {
			return err
		}

		amount, next, err := readBetween(line, "(", ")", next)
		if err != nil {
			return err
		}

		entries = append(entries, fmt.Sprintf("%s: %s", name, amount))
		start = next
	}

	fmt.Fprintln(p.w, strings.Join(entries, " | "))
	return nil
}

func (p *Parser) parseBlind(line, blind string) error {
	name, err := playerName(line)
	if err != nil {
		return err
	}

	amt, err := lastField(line)
	if err != nil {
		return err
	}

	p.printAction(name, blind, strconv.Itoa(amt), "")
	return nil
}

func (p *Parser) parseSimpleAction(line, action string) error {
	name, err := playerName(line)
	if err != nil {
		return err
	}

	p.printAction(name, action, "", "")
	return nil
}

func (p *Parser) parseAmountAction(line, action string) error {
	name, err := playerName(line)
	if err != nil {
		return err
	}

	amt, err := lastField(line)
	if err != nil {
		return err
	}

	p.printAction(name, action, strconv.Itoa(amt), "")
	return nil
}

func (p *Parser) parseRaise(line string) error {
	name, err := playerName(line)
	if err != nil {
		return err
	}

	amt, err := lastField(line)
	if err != nil {
		return err
	}

	action := "RAISES"
	if strings.Contains(line, "all in") {
		action = "ALL IN"
	}

	p.printAction(name, action, strconv.Itoa(amt), "")
	return nil
}

func (p *Parser) parseFlop(line string) error {
	flop, _, err := readBetween(line, "[", "]", 0)
	if err != nil {
		return err
	}

	p.printSeparator()
	p.printCards("Flop", strings.ReplaceAll(flop, ",", ""))
	return nil
}

// parseStreet handles the turn and river lines, which repeat the board so
// far before the revealed card
func (p *Parser) parseStreet(line, title, prefix string) error {
	board, _, err := readBetween(line, prefix, " [", 0)
	if err != nil {
		return err
	}

	card, _, err := readBetween(line, "[", "]", 0)
	if err != nil {
		return err
	}

	p.printSeparator()
	p.printCards(title, strings.ReplaceAll(board, ",", "")+" "+strings.ReplaceAll(card, ",", ""))
	return nil
}

func (p *Parser) parseShows(line string) error {
	name, err := playerName(line)
	if err != nil {
		return err
	}

	hole, _, err := readBetween(line, `" shows a `, ".", 0)
	if err != nil {
		return err
	}

	p.printAction(name, "SHOWS", hole, "")
	return nil
}

func (p *Parser) parseWins(line string) error {
	name, err := playerName(line)
	if err != nil {
		return err
	}

	wins, _, err := readBetween(line, `" wins `, " with ", 0)
	if err != nil {
		return err
	}

	hand, _, err := readBetween(line, " with ", "(", 0)
	if err != nil {
		return err
	}

	hole, _, err := readBetween(line, "(hand: ", ")", 0)
	if err != nil {
		return err
	}

	p.printCards(name+"'s HOLE", hole)
	p.printAction(name, "WINS", wins, strings.TrimSpace(hand))
	return nil
}
