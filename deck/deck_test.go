package deck

import (
	"testing"

	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
)

var fullDeckCount = 52

func TestDeck(t *testing.T) {
	t.Run("contains every card exactly once", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, len(d), fullDeckCount)

		seen := map[Card]int{}
		for _, c := range d {
			seen[Card{Rank: c.Rank, Suit: c.Suit}]++
		}
		utils.AssertEqual(t, len(seen), fullDeckCount)
		for card, count := range seen {
			if count != 1 {
				t.Errorf("%s appears %d times", card.Name(), count)
			}
		}
	})

	t.Run("all cards start face down", func(t *testing.T) {
		for _, c := range New() {
			assert.False(t, c.FaceUp)
		}
	})
}

func TestShuffle(t *testing.T) {
	t.Run("same seed, same order", func(t *testing.T) {
		d1 := NewShuffledWithSeed(42)
		d2 := NewShuffledWithSeed(42)
		utils.AssertDeepEqual(t, d1, d2)
	})

	t.Run("different seeds, different order", func(t *testing.T) {
		d1 := NewShuffledWithSeed(1)
		d2 := NewShuffledWithSeed(2)
		assert.NotEqual(t, d1, d2)
	})

	t.Run("shuffling conserves the 52 cards", func(t *testing.T) {
		for _, seed := range []int64{0, 1, 7, 1984, 123456789} {
			d := NewShuffledWithSeed(seed)
			seen := map[Card]bool{}
			for _, c := range d {
				seen[Card{Rank: c.Rank, Suit: c.Suit}] = true
			}
			utils.AssertEqual(t, len(seen), fullDeckCount)
		}
	})
}

func TestDeal(t *testing.T) {
	d := New()

	dealt := d.Deal(3)
	utils.AssertEqual(t, len(dealt), 3)
	utils.AssertEqual(t, len(d), fullDeckCount-3)

	t.Run("can deal the whole deck", func(t *testing.T) {
		rest := d.Deal(len(d))
		utils.AssertEqual(t, len(rest), fullDeckCount-3)
		utils.AssertEqual(t, len(d), 0)
	})

	t.Run("over-deal returns nothing", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, len(d.Deal(53)), 0)
		utils.AssertEqual(t, len(d), fullDeckCount)
	})
}
