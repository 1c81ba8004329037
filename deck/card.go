package deck

import "fmt"

// Rank represents a rank in a deck of cards, Ace low
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{
	"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var rankSymbols = []string{
	"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}

// Symbol returns the short form used on a rendered card face
func (r Rank) Symbol() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankSymbols[r]
}

// Value returns the numeric value of a rank (Ace=1 ... King=13)
func (r Rank) Value() int {
	return int(r)
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
var suitSymbols = []string{"♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitNames[s]
}

// Symbol returns the suit glyph used on a rendered card face
func (s Suit) Symbol() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

// Color of a suit: Hearts and Diamonds are red, Clubs and Spades black
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Card represents a playing card. Identity is the (Rank, Suit) pair;
// FaceUp is positional state owned by whichever pile holds the card.
type Card struct {
	Rank   Rank `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

// NewCard constructs a face-down card
func NewCard(rank Rank, suit Suit) Card {
	if rank < Ace || rank > King || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// Color returns the card's color, determined by its suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Same reports whether two cards share the same identity,
// regardless of facing
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

func (c Card) String() string {
	if !c.FaceUp {
		return "[#]"
	}
	return fmt.Sprintf("[%s%s]", c.Rank.Symbol(), c.Suit.Symbol())
}

// Name returns the long form, e.g. "Ace of Spades"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
