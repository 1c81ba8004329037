package game

import (
	"github.com/minaorangina/klondike/deck"
)

// CycleState describes where the stock/reserve/waste cycle is
type CycleState int

const (
	StockHasCards CycleState = iota
	StockEmptyReserveFull
	StockEmptyWasteHasCards
	AllEmpty
)

var cycleStateNames = []string{
	"StockHasCards",
	"StockEmptyReserveFull",
	"StockEmptyWasteHasCards",
	"AllEmpty",
}

func (s CycleState) String() string {
	return cycleStateNames[s]
}

// StockWaste manages the draw cycle: the face-down stock, the single
// face-up reserve card currently in play, and the face-up waste pile.
// The three piles are disjoint at all times.
type StockWaste struct {
	stock   []deck.Card // face down, drawn from the end
	reserve *deck.Card  // at most one card, face up
	waste   []deck.Card // face up, most recent discard last
}

// NewStockWaste builds the cycle from the cards left over after the
// tableau deal. They enter the stock face down, in dealt order.
func NewStockWaste(cards []deck.Card) *StockWaste {
	sw := &StockWaste{stock: make([]deck.Card, len(cards))}
	for i, c := range cards {
		c.FaceUp = false
		sw.stock[i] = c
	}
	return sw
}

// Draw moves the current reserve card (if any) to the waste, then
// turns over the top card of the stock into the reserve. The stock is
// checked first so a failed draw changes nothing.
func (sw *StockWaste) Draw() error {
	if len(sw.stock) == 0 {
		return ErrEmptyStock
	}

	if sw.reserve != nil {
		sw.pushWaste(*sw.reserve)
		sw.reserve = nil
	}

	card := sw.stock[len(sw.stock)-1]
	sw.stock = sw.stock[:len(sw.stock)-1]
	card.FaceUp = true
	sw.reserve = &card

	return nil
}

// DiscardReserve moves the reserve card to the top of the waste
func (sw *StockWaste) DiscardReserve() error {
	if sw.reserve == nil {
		return ErrNoReserveCard
	}
	sw.pushWaste(*sw.reserve)
	sw.reserve = nil
	return nil
}

// Reshuffle turns the waste back into the stock. The waste is
// reversed, so the earliest discard is drawn first and a full cycle
// re-presents cards in their original draw order. The reserve card is
// never pulled in.
func (sw *StockWaste) Reshuffle() error {
	if len(sw.stock) > 0 {
		return ErrStockNotEmpty
	}

	stock := make([]deck.Card, 0, len(sw.waste))
	for i := len(sw.waste) - 1; i >= 0; i-- {
		c := sw.waste[i]
		c.FaceUp = false
		stock = append(stock, c)
	}
	sw.stock = stock
	sw.waste = nil

	return nil
}

// TakeReserve removes and returns the reserve card, for play onto the
// tableau or a foundation
func (sw *StockWaste) TakeReserve() (deck.Card, error) {
	if sw.reserve == nil {
		return deck.Card{}, ErrNoReserveCard
	}
	card := *sw.reserve
	sw.reserve = nil
	return card, nil
}

// Reserve returns the reserve card without removing it
func (sw *StockWaste) Reserve() (deck.Card, bool) {
	if sw.reserve == nil {
		return deck.Card{}, false
	}
	return *sw.reserve, true
}

func (sw *StockWaste) StockLen() int {
	return len(sw.stock)
}

func (sw *StockWaste) WasteLen() int {
	return len(sw.waste)
}

// Waste returns a copy of the waste pile, earliest discard first
func (sw *StockWaste) Waste() []deck.Card {
	out := make([]deck.Card, len(sw.waste))
	copy(out, sw.waste)
	return out
}

// State reports which stage of the cycle the piles are in
func (sw *StockWaste) State() CycleState {
	switch {
	case len(sw.stock) > 0:
		return StockHasCards
	case sw.reserve != nil:
		return StockEmptyReserveFull
	case len(sw.waste) > 0:
		return StockEmptyWasteHasCards
	default:
		return AllEmpty
	}
}

func (sw *StockWaste) pushWaste(card deck.Card) {
	card.FaceUp = true
	sw.waste = append(sw.waste, card)
}
