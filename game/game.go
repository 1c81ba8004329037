package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

// Klondike owns the whole 52-card universe for one game: seven
// tableau columns, four foundations and the stock/waste cycle. Every
// player action goes through it; an action either fully applies or
// fails with a typed error and changes nothing.
type Klondike struct {
	columns     [NumColumns]*Column
	foundations [4]*Foundation // indexed by deck.Suit
	cycle       *StockWaste

	// partial games (ExistingKlondike) don't hold all 52 cards,
	// so conservation isn't asserted on them
	partial bool
}

// KlondikeOpts seeds a game from explicit pile contents. Used by
// tests and by nothing else; a zero Opts is not a playable game.
type KlondikeOpts struct {
	Columns     [NumColumns][]deck.Card
	Foundations map[deck.Suit][]deck.Card
	Stock       []deck.Card
	Waste       []deck.Card
	Reserve     *deck.Card
}

// NewKlondike deals a fresh, randomly shuffled game
func NewKlondike() *Klondike {
	return deal(deck.NewShuffled())
}

// NewKlondikeWithSeed deals a reproducible game from a seed
func NewKlondikeWithSeed(seed int64) *Klondike {
	return deal(deck.NewShuffledWithSeed(seed))
}

// deal distributes the shuffled deck: column i receives i+1 cards
// with only the last face up, the remaining 24 cards become the stock
func deal(d deck.Deck) *Klondike {
	k := &Klondike{}

	for i := 0; i < NumColumns; i++ {
		col := &Column{}
		col.DealInitial(d.Deal(i + 1))
		k.columns[i] = col
	}

	k.cycle = NewStockWaste(d.Deal(len(d)))

	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		k.foundations[suit] = NewFoundation(suit)
	}

	k.assertConserved()
	return k
}

// ExistingKlondike constructs a game mid-flight from explicit piles.
// Facing of cards already in foundations, waste or reserve is forced
// face up; tableau facing is taken as given. Conservation is not
// asserted for these games: tests deliberately build partial worlds.
func ExistingKlondike(opts KlondikeOpts) *Klondike {
	k := &Klondike{partial: true}

	for i := range k.columns {
		col := &Column{cards: append([]deck.Card{}, opts.Columns[i]...)}
		k.columns[i] = col
	}

	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		f := NewFoundation(suit)
		for _, c := range opts.Foundations[suit] {
			c.FaceUp = true
			f.cards = append(f.cards, c)
		}
		k.foundations[suit] = f
	}

	k.cycle = NewStockWaste(opts.Stock)
	k.cycle.waste = append([]deck.Card{}, opts.Waste...)
	for i := range k.cycle.waste {
		k.cycle.waste[i].FaceUp = true
	}
	if opts.Reserve != nil {
		r := *opts.Reserve
		r.FaceUp = true
		k.cycle.reserve = &r
	}

	return k
}

// DrawCard turns over the next stock card into the reserve. If the
// stock is out, the waste is reshuffled back in first; if the waste
// is out too, the draw fails.
func (k *Klondike) DrawCard() error {
	if k == nil {
		return ErrNilGame
	}

	err := k.cycle.Draw()
	if err == ErrEmptyStock && k.cycle.WasteLen() > 0 {
		if err := k.cycle.Reshuffle(); err != nil {
			return err
		}
		err = k.cycle.Draw()
	}
	if err != nil {
		return err
	}

	k.assertConserved()
	return nil
}

// MoveWithinTableau moves the run starting at srcIndex in column src
// onto column dst
func (k *Klondike) MoveWithinTableau(src, srcIndex, dst int) error {
	if k == nil {
		return ErrNilGame
	}
	if !validColumn(src) || !validColumn(dst) {
		return ErrNoSuchColumn
	}
	if src == dst {
		return ErrInvalidMove
	}

	run, err := k.columns[src].MovableRun(srcIndex)
	if err != nil {
		return err
	}
	if !k.columns[dst].CanAccept(run[0]) {
		return ErrInvalidMove
	}

	k.columns[src].RemoveTopN(len(run))
	k.columns[dst].PushRun(run)

	k.assertConserved()
	return nil
}

// MoveToFoundation moves the top card of a column onto its foundation
func (k *Klondike) MoveToFoundation(col int) error {
	if k == nil {
		return ErrNilGame
	}
	if !validColumn(col) {
		return ErrNoSuchColumn
	}

	top, ok := k.columns[col].Top()
	if !ok || !top.FaceUp {
		return ErrIllegalMove
	}

	f := k.foundations[top.Suit]
	if !f.CanAccept(top) {
		return ErrIllegalMove
	}

	k.columns[col].RemoveTopN(1)
	if err := f.Push(top); err != nil {
		// CanAccept was checked above
		panic(fmt.Sprintf("foundation rejected a checked card: %v", err))
	}

	k.assertConserved()
	return nil
}

// MoveReserveToTableau plays the reserve card onto column dst
func (k *Klondike) MoveReserveToTableau(dst int) error {
	if k == nil {
		return ErrNilGame
	}
	if !validColumn(dst) {
		return ErrNoSuchColumn
	}

	card, ok := k.cycle.Reserve()
	if !ok {
		return ErrNoReserveCard
	}
	if !k.columns[dst].CanAccept(card) {
		return ErrInvalidMove
	}

	if _, err := k.cycle.TakeReserve(); err != nil {
		return err
	}
	k.columns[dst].PushRun([]deck.Card{card})

	k.assertConserved()
	return nil
}

// MoveReserveToFoundation plays the reserve card onto its foundation
func (k *Klondike) MoveReserveToFoundation() error {
	if k == nil {
		return ErrNilGame
	}

	card, ok := k.cycle.Reserve()
	if !ok {
		return ErrNoReserveCard
	}

	f := k.foundations[card.Suit]
	if !f.CanAccept(card) {
		return ErrIllegalMove
	}

	if _, err := k.cycle.TakeReserve(); err != nil {
		return err
	}
	if err := f.Push(card); err != nil {
		panic(fmt.Sprintf("foundation rejected a checked card: %v", err))
	}

	k.assertConserved()
	return nil
}

// DiscardReserve moves the reserve card onto the waste pile
func (k *Klondike) DiscardReserve() error {
	if k == nil {
		return ErrNilGame
	}
	if err := k.cycle.DiscardReserve(); err != nil {
		return err
	}
	k.assertConserved()
	return nil
}

// Reshuffle manually turns the waste back into the stock. Only legal
// once the stock is empty.
func (k *Klondike) Reshuffle() error {
	if k == nil {
		return ErrNilGame
	}
	if err := k.cycle.Reshuffle(); err != nil {
		return err
	}
	k.assertConserved()
	return nil
}

// IsWon reports whether all four foundations are complete
func (k *Klondike) IsWon() bool {
	for _, f := range k.foundations {
		if !f.IsComplete() {
			return false
		}
	}
	return true
}

// IsStuck reports whether no legal move remains: the stock, waste and
// reserve are all empty and nothing on the tableau can move. Advisory
// only; the game never enforces it.
func (k *Klondike) IsStuck() bool {
	if k.cycle.State() != AllEmpty {
		return false
	}

	for src := range k.columns {
		for idx := range k.columns[src].cards {
			run, err := k.columns[src].MovableRun(idx)
			if err != nil {
				continue
			}
			for dst := range k.columns {
				if dst != src && k.columns[dst].CanAccept(run[0]) {
					return false
				}
			}
		}

		if top, ok := k.columns[src].Top(); ok && top.FaceUp {
			if k.foundations[top.Suit].CanAccept(top) {
				return false
			}
		}
	}

	return true
}

// Column returns a read-only view of one tableau column
func (k *Klondike) Column(i int) ([]deck.Card, error) {
	if !validColumn(i) {
		return nil, ErrNoSuchColumn
	}
	return k.columns[i].Cards(), nil
}

// Foundation returns a read-only view of the pile for a suit
func (k *Klondike) Foundation(suit deck.Suit) []deck.Card {
	return k.foundations[suit].Cards()
}

// Cycle exposes the stock/waste counters for display
func (k *Klondike) Cycle() *StockWaste {
	return k.cycle
}

func validColumn(i int) bool {
	return i >= 0 && i < NumColumns
}

// assertConserved panics unless the piles together hold exactly the
// 52 distinct cards. A failure here is an engine bug, never a
// consequence of player input.
func (k *Klondike) assertConserved() {
	if k.partial {
		return
	}

	seen := map[deck.Suit]map[deck.Rank]int{}
	count := 0

	record := func(c deck.Card) {
		if seen[c.Suit] == nil {
			seen[c.Suit] = map[deck.Rank]int{}
		}
		seen[c.Suit][c.Rank]++
		if seen[c.Suit][c.Rank] > 1 {
			panic(fmt.Sprintf("duplicate card in play: %s", c.Name()))
		}
		count++
	}

	for _, col := range k.columns {
		for _, c := range col.cards {
			record(c)
		}
	}
	for _, f := range k.foundations {
		for _, c := range f.cards {
			record(c)
		}
	}
	for _, c := range k.cycle.stock {
		record(c)
	}
	for _, c := range k.cycle.waste {
		record(c)
	}
	if r, ok := k.cycle.Reserve(); ok {
		record(r)
	}

	if count != 52 {
		panic(fmt.Sprintf("card count is %d, want 52", count))
	}
}
