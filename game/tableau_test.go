package game

import (
	"testing"

	"github.com/minaorangina/klondike/deck"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
)

func faceUp(rank deck.Rank, suit deck.Suit) deck.Card {
	c := deck.NewCard(rank, suit)
	c.FaceUp = true
	return c
}

func faceDown(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.NewCard(rank, suit)
}

func TestColumnCanAccept(t *testing.T) {
	sevenSpades := &Column{cards: []deck.Card{faceUp(deck.Seven, deck.Spades)}}

	cases := []struct {
		name     string
		column   *Column
		head     deck.Card
		expected bool
	}{
		{"black 7 accepts red 6", sevenSpades, faceUp(deck.Six, deck.Hearts), true},
		{"black 7 accepts the other red 6", sevenSpades, faceUp(deck.Six, deck.Diamonds), true},
		{"black 7 rejects black 6", sevenSpades, faceUp(deck.Six, deck.Clubs), false},
		{"black 7 rejects red 5", sevenSpades, faceUp(deck.Five, deck.Hearts), false},
		{"black 7 rejects red 8", sevenSpades, faceUp(deck.Eight, deck.Hearts), false},
		{"empty column accepts a King", &Column{}, faceUp(deck.King, deck.Diamonds), true},
		{"empty column rejects a Queen", &Column{}, faceUp(deck.Queen, deck.Diamonds), false},
		{"empty column rejects an Ace", &Column{}, faceUp(deck.Ace, deck.Spades), false},
		{
			"face-down top card accepts nothing",
			&Column{cards: []deck.Card{faceDown(deck.Seven, deck.Spades)}},
			faceUp(deck.Six, deck.Hearts),
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, c.column.CanAccept(c.head), c.expected)
		})
	}
}

func TestColumnMovableRun(t *testing.T) {
	column := &Column{cards: []deck.Card{
		faceDown(deck.King, deck.Clubs),
		faceUp(deck.Nine, deck.Spades),
		faceUp(deck.Eight, deck.Hearts),
		faceUp(deck.Seven, deck.Clubs),
	}}

	t.Run("whole face-up run is movable", func(t *testing.T) {
		run, err := column.MovableRun(1)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(run), 3)
		utils.AssertEqual(t, run[0].Rank, deck.Nine)
	})

	t.Run("suffix of the run is movable", func(t *testing.T) {
		run, err := column.MovableRun(3)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(run), 1)
		utils.AssertEqual(t, run[0].Rank, deck.Seven)
	})

	t.Run("face-down card cannot head a run", func(t *testing.T) {
		_, err := column.MovableRun(0)
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := column.MovableRun(4)
		assert.ErrorIs(t, err, ErrInvalidSelection)

		_, err = column.MovableRun(-1)
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("broken sequence is not movable", func(t *testing.T) {
		broken := &Column{cards: []deck.Card{
			faceUp(deck.Nine, deck.Spades),
			faceUp(deck.Eight, deck.Spades), // same color
		}}
		_, err := broken.MovableRun(0)
		assert.ErrorIs(t, err, ErrInvalidSelection)

		gapped := &Column{cards: []deck.Card{
			faceUp(deck.Nine, deck.Spades),
			faceUp(deck.Seven, deck.Hearts), // skips a rank
		}}
		_, err = gapped.MovableRun(0)
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("returned run is a copy", func(t *testing.T) {
		run, err := column.MovableRun(3)
		utils.AssertNoError(t, err)

		run[0] = faceUp(deck.Two, deck.Clubs)
		top, _ := column.Top()
		utils.AssertEqual(t, top.Rank, deck.Seven)
	})
}

func TestColumnRemoveTopN(t *testing.T) {
	t.Run("exposing a face-down card flips it", func(t *testing.T) {
		column := &Column{cards: []deck.Card{
			faceDown(deck.King, deck.Clubs),
			faceUp(deck.Nine, deck.Spades),
		}}

		column.RemoveTopN(1)
		top, ok := column.Top()
		utils.AssertTrue(t, ok)
		utils.AssertTrue(t, top.FaceUp)
		utils.AssertEqual(t, top.Rank, deck.King)
	})

	t.Run("emptying a column leaves it empty, no flip", func(t *testing.T) {
		column := &Column{cards: []deck.Card{faceUp(deck.Nine, deck.Spades)}}
		column.RemoveTopN(1)
		utils.AssertEqual(t, column.Len(), 0)
	})

	t.Run("exposing a face-up card leaves it alone", func(t *testing.T) {
		column := &Column{cards: []deck.Card{
			faceUp(deck.Ten, deck.Hearts),
			faceUp(deck.Nine, deck.Spades),
		}}
		column.RemoveTopN(1)
		top, _ := column.Top()
		utils.AssertEqual(t, top.Rank, deck.Ten)
		utils.AssertTrue(t, top.FaceUp)
	})

	t.Run("removing more than the column holds panics", func(t *testing.T) {
		column := &Column{cards: []deck.Card{faceUp(deck.Nine, deck.Spades)}}
		assert.Panics(t, func() { column.RemoveTopN(2) })
	})
}

func TestColumnDealInitial(t *testing.T) {
	column := &Column{}
	column.DealInitial([]deck.Card{
		deck.NewCard(deck.Four, deck.Clubs),
		deck.NewCard(deck.Jack, deck.Hearts),
		deck.NewCard(deck.Two, deck.Spades),
	})

	cards := column.Cards()
	assert.False(t, cards[0].FaceUp)
	assert.False(t, cards[1].FaceUp)
	assert.True(t, cards[2].FaceUp)
}

func TestColumnPushRun(t *testing.T) {
	column := &Column{cards: []deck.Card{faceUp(deck.Nine, deck.Spades)}}
	column.PushRun([]deck.Card{
		deck.NewCard(deck.Eight, deck.Hearts), // pushed face down on purpose
	})

	top, _ := column.Top()
	utils.AssertTrue(t, top.FaceUp)
	utils.AssertEqual(t, column.Len(), 2)
}
