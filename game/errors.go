package game

import "errors"

// Every failure below is caller-recoverable: the operation reports it
// and leaves the game untouched. Invariant violations are the only
// panics; they indicate a programming error, not bad player input.
var (
	ErrNilGame          = errors.New("game is nil")
	ErrInvalidSelection = errors.New("selected cards are not a movable run")
	ErrInvalidMove      = errors.New("destination column cannot accept those cards")
	ErrIllegalMove      = errors.New("foundation cannot accept that card")
	ErrNoReserveCard    = errors.New("no card in the reserve")
	ErrEmptyStock       = errors.New("stock is empty and there is nothing to reshuffle")
	ErrStockNotEmpty    = errors.New("cannot reshuffle while the stock still has cards")
	ErrNoSuchColumn     = errors.New("no such column")
)
