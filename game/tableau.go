package game

import (
	"github.com/minaorangina/klondike/deck"
)

// NumColumns is the number of tableau columns in a standard deal
const NumColumns = 7

// Column is a single tableau column, ordered bottom to top.
// Face-down cards never sit above a face-up card.
type Column struct {
	cards []deck.Card
}

// DealInitial places the dealt cards face down, then turns over the
// top card
func (c *Column) DealInitial(cards []deck.Card) {
	c.cards = make([]deck.Card, len(cards))
	for i, card := range cards {
		card.FaceUp = i == len(cards)-1
		c.cards[i] = card
	}
}

// Cards returns a copy of the column, bottom to top
func (c *Column) Cards() []deck.Card {
	out := make([]deck.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

func (c *Column) Len() int {
	return len(c.cards)
}

// Top returns the topmost card, if the column is not empty
func (c *Column) Top() (deck.Card, bool) {
	if len(c.cards) == 0 {
		return deck.Card{}, false
	}
	return c.cards[len(c.cards)-1], true
}

// CanAccept reports whether the column can legally receive a run
// headed by the given card: a King on an empty column, or a face-up
// top card of the opposite color and one rank higher than the head.
func (c *Column) CanAccept(head deck.Card) bool {
	top, ok := c.Top()
	if !ok {
		return head.Rank == deck.King
	}
	if !top.FaceUp {
		return false
	}
	return top.Color() != head.Color() && top.Rank.Value() == head.Rank.Value()+1
}

// MovableRun returns the cards from fromIndex to the top of the
// column, provided they form a legal run: all face up, descending by
// one rank per card, colors alternating.
func (c *Column) MovableRun(fromIndex int) ([]deck.Card, error) {
	if fromIndex < 0 || fromIndex >= len(c.cards) {
		return nil, ErrInvalidSelection
	}

	run := c.cards[fromIndex:]
	for i, card := range run {
		if !card.FaceUp {
			return nil, ErrInvalidSelection
		}
		if i == 0 {
			continue
		}
		prev := run[i-1]
		if prev.Color() == card.Color() || prev.Rank.Value() != card.Rank.Value()+1 {
			return nil, ErrInvalidSelection
		}
	}

	out := make([]deck.Card, len(run))
	copy(out, run)
	return out, nil
}

// PushRun appends cards to the top of the column, face up
func (c *Column) PushRun(cards []deck.Card) {
	for _, card := range cards {
		card.FaceUp = true
		c.cards = append(c.cards, card)
	}
}

// RemoveTopN removes the top n cards. If the removal exposes a
// face-down card it is turned over; an emptied column stays empty.
func (c *Column) RemoveTopN(n int) {
	if n < 0 || n > len(c.cards) {
		panic("removing more cards than the column holds")
	}
	c.cards = c.cards[:len(c.cards)-n]
	if top := len(c.cards) - 1; top >= 0 && !c.cards[top].FaceUp {
		c.cards[top].FaceUp = true
	}
}
