package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedNotation is an error when a card token does not match the
// two-character <rank><suit> grammar
var ErrMalformedNotation = errors.New("malformed card notation")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is the canonical suit order used when building a deck
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

// rank constants. Ranks run 1 through 13 where 1 is the ace. For magnitude
// comparisons the ace is always high; it only plays low inside a wheel
// straight, and that case lives in the straight logic, not here.
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// the 52 canonical cards, built once at process start. Lookups and parses hand
// out pointers into this table, so two cards are equal iff their pointers are.
var cardTable = buildCardTable()

func buildCardTable() map[Suit][]*Card {
	table := make(map[Suit][]*Card)
	for _, suit := range Suits {
		cards := make([]*Card, 0, 13)
		for rank := 1; rank <= 13; rank++ {
			cards = append(cards, &Card{Rank: rank, Suit: suit})
		}

		table[suit] = cards
	}

	return table
}

// GetCard returns the canonical card for the rank and suit
func GetCard(rank int, suit Suit) *Card {
	cards, ok := cardTable[suit]
	if !ok {
		panic(fmt.Sprintf("unknown suit: %s", suit))
	}

	if rank < 1 || rank > 13 {
		panic(fmt.Sprintf("rank out of range: %d", rank))
	}

	return cards[rank-1]
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Less returns true if the card ranks strictly below the other card
func (c *Card) Less(other *Card) bool {
	return RankLess(c.Rank, other.Rank)
}

// RankLess compares two raw ranks with the ace high. An ace is never less
// than anything
func RankLess(a, b int) bool {
	if a == Ace {
		return false
	}

	if b == Ace {
		return true
	}

	return a < b
}

const rankChars = "A23456789TJQK"

// RankString returns the single-character representation of a rank
func RankString(rank int) string {
	if rank < 1 || rank > 13 {
		panic(fmt.Sprintf("rank out of range: %d", rank))
	}

	return string(rankChars[rank-1])
}

// RankFromString parses a single-character rank (A, 2-9, T, J, Q, K)
func RankFromString(s string) (int, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}

	idx := strings.IndexByte(rankChars, s[0])
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}

	return idx + 1, nil
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♦"
	case Hearts:
		suit = "♥"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", RankString(c.Rank), suit)
}

var cardRx = regexp.MustCompile(`^([2-9TJQKA])([shdc])\z`)

// ParseCard parses a two-character card token such as "As" or "Td".
// The rank must be one of 2-9, T, J, Q, K, A, and the suit one of s, h, d, c.
// The returned card is the canonical instance for that rank and suit.
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}

	rank := strings.IndexByte(rankChars, match[1][0]) + 1

	var suit Suit
	switch match[2] {
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	}

	return GetCard(rank, suit), nil
}

// CardToString converts a card back to its two-character token.
// CardToString round-trips exactly with ParseCard
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Spades:
		suit = "s"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Clubs:
		suit = "c"
	}

	return RankString(card.Rank) + suit
}

// CardFromString returns a Card from the string, and panics if the string
// cannot be parsed. Intended for tests and fixtures
func CardFromString(s string) *Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return card
}

// CardsFromString returns a slice of cards from a comma-separated string like
// "As,Kd,2c". Panics on a bad token; see ParseCards for the error-returning form
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// ParseCards parses a comma-separated string of card tokens
func ParseCards(s string) ([]*Card, error) {
	if s == "" {
		return []*Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := ParseCard(strings.TrimSpace(cs))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of "As,Kd,2c"
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
