package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/minaorangina/klondike/game"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryGameStore(t *testing.T) {
	t.Run("add and find", func(t *testing.T) {
		s := NewInMemoryGameStore()
		k := game.NewKlondikeWithSeed(1)

		utils.AssertNoError(t, s.AddGame("ABCDEF", k))
		utils.AssertEqual(t, s.FindGame("ABCDEF"), k)
		utils.AssertEqual(t, s.GameCount(), 1)
	})

	t.Run("unknown id finds nothing", func(t *testing.T) {
		s := NewInMemoryGameStore()
		if s.FindGame("NOPE") != nil {
			t.Error("expected no game")
		}
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		s := NewInMemoryGameStore()
		utils.AssertNoError(t, s.AddGame("ABCDEF", game.NewKlondikeWithSeed(1)))
		utils.AssertErrored(t, s.AddGame("ABCDEF", game.NewKlondikeWithSeed(2)))
	})

	t.Run("nil games are rejected", func(t *testing.T) {
		s := NewInMemoryGameStore()
		utils.AssertErrored(t, s.AddGame("ABCDEF", nil))
	})

	t.Run("remove", func(t *testing.T) {
		s := NewInMemoryGameStore()
		utils.AssertNoError(t, s.AddGame("ABCDEF", game.NewKlondikeWithSeed(1)))
		s.RemoveGame("ABCDEF")
		assert.Nil(t, s.FindGame("ABCDEF"))
		utils.AssertEqual(t, s.GameCount(), 0)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		s := NewInMemoryGameStore()
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("GAME%02d", i)
				s.AddGame(id, game.NewKlondikeWithSeed(int64(i)))
				s.FindGame(id)
				s.GameCount()
			}(i)
		}
		wg.Wait()

		utils.AssertEqual(t, s.GameCount(), 20)
	})
}
