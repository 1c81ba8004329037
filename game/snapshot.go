package game

import (
	"github.com/minaorangina/klondike/deck"
)

// FoundationView is the visible state of one foundation pile
type FoundationView struct {
	Suit     deck.Suit  `json:"suit"`
	Top      *deck.Card `json:"top,omitempty"`
	Count    int        `json:"count"`
	Complete bool       `json:"complete"`
}

// Snapshot is a read-only copy of everything a player can see. It
// shares no memory with the game, so callers can hold onto it across
// moves.
type Snapshot struct {
	Columns     [NumColumns][]deck.Card `json:"columns"`
	Foundations [4]FoundationView       `json:"foundations"`
	StockCount  int                     `json:"stockCount"`
	WasteCount  int                     `json:"wasteCount"`
	Reserve     *deck.Card              `json:"reserve,omitempty"`
	Won         bool                    `json:"won"`
	Stuck       bool                    `json:"stuck"`
}

// Snapshot captures the current visible state
func (k *Klondike) Snapshot() Snapshot {
	var snap Snapshot

	for i, col := range k.columns {
		snap.Columns[i] = col.Cards()
	}

	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		f := k.foundations[suit]
		view := FoundationView{
			Suit:     suit,
			Count:    f.Len(),
			Complete: f.IsComplete(),
		}
		if top, ok := f.Top(); ok {
			view.Top = &top
		}
		snap.Foundations[suit] = view
	}

	snap.StockCount = k.cycle.StockLen()
	snap.WasteCount = k.cycle.WasteLen()
	if r, ok := k.cycle.Reserve(); ok {
		snap.Reserve = &r
	}

	snap.Won = k.IsWon()
	snap.Stuck = k.IsStuck()

	return snap
}
