package game

import (
	"github.com/minaorangina/klondike/deck"
)

const foundationComplete = 13

// Foundation is one of the four suit piles, built Ace to King
type Foundation struct {
	suit  deck.Suit
	cards []deck.Card
}

// NewFoundation constructs an empty foundation for the given suit
func NewFoundation(suit deck.Suit) *Foundation {
	return &Foundation{suit: suit}
}

func (f *Foundation) Suit() deck.Suit {
	return f.suit
}

func (f *Foundation) Len() int {
	return len(f.cards)
}

// Cards returns a copy of the pile, Ace first
func (f *Foundation) Cards() []deck.Card {
	out := make([]deck.Card, len(f.cards))
	copy(out, f.cards)
	return out
}

// Top returns the topmost card, if the foundation is not empty
func (f *Foundation) Top() (deck.Card, bool) {
	if len(f.cards) == 0 {
		return deck.Card{}, false
	}
	return f.cards[len(f.cards)-1], true
}

// CanAccept reports whether the card is the next one this pile needs:
// its Ace when empty, otherwise one rank above the current top, suit
// matching throughout.
func (f *Foundation) CanAccept(card deck.Card) bool {
	if card.Suit != f.suit {
		return false
	}
	top, ok := f.Top()
	if !ok {
		return card.Rank == deck.Ace
	}
	return card.Rank.Value() == top.Rank.Value()+1
}

// Push adds the card to the pile, face up
func (f *Foundation) Push(card deck.Card) error {
	if !f.CanAccept(card) {
		return ErrIllegalMove
	}
	card.FaceUp = true
	f.cards = append(f.cards, card)
	return nil
}

// IsComplete reports whether the pile has been built up to the King
func (f *Foundation) IsComplete() bool {
	return len(f.cards) == foundationComplete
}
