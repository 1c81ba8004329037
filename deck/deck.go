package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards
type Deck []Card

// New creates the full 52-card deck, face down, in a fixed order
func New() Deck {
	cards := make(Deck, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewShuffled creates a freshly shuffled 52-card deck
func NewShuffled() Deck {
	return NewShuffledWithSeed(time.Now().UnixNano())
}

// NewShuffledWithSeed creates a 52-card deck shuffled with the given
// seed, for reproducible deals
func NewShuffledWithSeed(seed int64) Deck {
	d := New()
	d.ShuffleWithSeed(seed)
	return d
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle() {
	d.ShuffleWithSeed(time.Now().UnixNano())
}

// ShuffleWithSeed applies a Fisher-Yates shuffle seeded deterministically
func (d Deck) ShuffleWithSeed(seed int64) {
	r := rand.New(rand.NewSource(seed))
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n cards from the top of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
