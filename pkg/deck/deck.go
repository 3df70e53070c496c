package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrCardNotFound is an error when a card is not in the deck
var ErrCardNotFound = errors.New("card not found in deck")

// ErrInsufficientCards is an error when a draw wants more cards than remain
var ErrInsufficientCards = errors.New("not enough cards left in deck")

// Deck represents a playing deck. The deck plus its removed cards always hold
// the canonical 52 with no duplicates; Remove and Draw move cards to the
// removed partition and Return moves them back.
//
// A Deck is not safe for concurrent use. Each simulation worker must own its
// own instance.
type Deck struct {
	Cards   []*Card `json:"cards"`
	removed []*Card
	seed    int64
	rng     *rand.Rand
}

// New returns a new deck of the 52 canonical cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 1; rank <= 13; rank++ {
			cards = append(cards, GetCard(rank, suit))
		}
	}

	d.Cards = cards
	d.removed = d.removed[:0]
}

// Shuffle will shuffle the remaining cards in the deck. Removed cards stay
// removed.
// You can manually specify the seed, or leave it as 0. With a zero seed the
// deck keeps drawing from its existing random stream, falling back to a
// time-based seed on first use, so repeated Shuffle(0) calls in a simulation
// stay deterministic once SetSeed has been called.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed > 0 {
		d.SetSeed(seed)
	} else if d.rng == nil {
		d.SetSeed(time.Now().UnixNano())
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Remove takes the specified card out of the deck.
// If the card is not in the deck, ErrCardNotFound is returned
func (d *Deck) Remove(card *Card) error {
	for i, c := range d.Cards {
		if c.Equal(card) {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			d.removed = append(d.removed, c)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrCardNotFound, CardToString(card))
}

// Draw removes and returns n cards from the front of the deck.
// If fewer than n cards remain, ErrInsufficientCards is returned and the deck
// is left untouched
func (d *Deck) Draw(n int) ([]*Card, error) {
	if len(d.Cards) < n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.Cards))
	}

	cards := d.Cards[:n]
	d.Cards = d.Cards[n:]
	d.removed = append(d.removed, cards...)

	drawn := make([]*Card, n)
	copy(drawn, cards)
	return drawn, nil
}

// Return puts previously removed cards back into the deck.
// Returning a card that was never removed is ErrCardNotFound
func (d *Deck) Return(cards []*Card) error {
	for _, card := range cards {
		found := false
		for i, c := range d.removed {
			if c.Equal(card) {
				d.removed = append(d.removed[:i], d.removed[i+1:]...)
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("%w: %s was not removed", ErrCardNotFound, CardToString(card))
		}

		d.Cards = append(d.Cards, card)
	}

	return nil
}

// Reset returns every removed card to the deck
func (d *Deck) Reset() {
	d.Cards = append(d.Cards, d.removed...)
	d.removed = d.removed[:0]
}

// Removed returns the cards currently out of the deck
func (d *Deck) Removed() []*Card {
	removed := make([]*Card, len(d.removed))
	copy(removed, d.removed)
	return removed
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
