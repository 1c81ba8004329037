package deck

import (
	"testing"

	utils "github.com/minaorangina/klondike/internal"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest value card", NewCard(Ace, Clubs), "Ace of Clubs"},
		{"Specific card", NewCard(Queen, Hearts), "Queen of Hearts"},
		{"Highest value card", NewCard(King, Spades), "King of Spades"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.card.Name(), c.expected)
	}

	t.Run("out of range (should panic)", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Expected to panic, but it didn't")
			}
		}()
		NewCard(King+1, Hearts)
	})

	t.Run("colors", func(t *testing.T) {
		utils.AssertEqual(t, NewCard(Six, Hearts).Color(), Red)
		utils.AssertEqual(t, NewCard(Six, Diamonds).Color(), Red)
		utils.AssertEqual(t, NewCard(Six, Spades).Color(), Black)
		utils.AssertEqual(t, NewCard(Six, Clubs).Color(), Black)
	})

	t.Run("face-down cards don't reveal themselves", func(t *testing.T) {
		c := NewCard(Ace, Spades)
		utils.AssertEqual(t, c.String(), "[#]")

		c.FaceUp = true
		utils.AssertEqual(t, c.String(), "[A♠]")
	})

	t.Run("identity ignores facing", func(t *testing.T) {
		down := NewCard(Ten, Diamonds)
		up := down
		up.FaceUp = true
		utils.AssertTrue(t, down.Same(up))
	})
}

func TestRankValue(t *testing.T) {
	utils.AssertEqual(t, Ace.Value(), 1)
	utils.AssertEqual(t, Ten.Value(), 10)
	utils.AssertEqual(t, King.Value(), 13)
}
