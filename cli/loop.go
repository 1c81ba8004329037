package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/klondike/game"
)

const commandHelp = "Commands: [p] Draw  [s] Move between columns  [f] Column to foundation  " +
	"[m] Reserve to column  [mf] Reserve to foundation  [d] Discard reserve  [r] Reshuffle  [q] Quit"

// Loop runs the interactive session: render, read one command, apply
// it, repeat. It owns no rule logic; every decision is the engine's.
type Loop struct {
	game    *game.Klondike
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLoop constructs a Loop around a game and a terminal
func NewLoop(k *game.Klondike, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		game:    k,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays until the game is won or the player quits
func (l *Loop) Run() error {
	message := ""

	for {
		snap := l.game.Snapshot()
		fmt.Fprintln(l.out)
		fmt.Fprint(l.out, RenderBoard(snap))

		if snap.Won {
			fmt.Fprintln(l.out, "You won! All four foundations are complete.")
			return nil
		}
		if snap.Stuck {
			fmt.Fprintln(l.out, "No moves left. (You can keep trying, or quit.)")
		}
		if message != "" {
			fmt.Fprintln(l.out, message)
			message = ""
		}

		fmt.Fprintln(l.out, commandHelp)
		cmd, ok := l.prompt("Command: ")
		if !ok {
			return nil
		}

		switch strings.ToLower(cmd) {
		case "q":
			fmt.Fprintln(l.out, "Bye!")
			return nil
		case "p":
			message = l.report(l.game.DrawCard(), "Drew a card.")
		case "s":
			message = l.moveBetweenColumns(snap)
		case "f":
			col, ok := l.promptInt("Column (0-6): ")
			if !ok {
				return nil
			}
			message = l.report(l.game.MoveToFoundation(col), "Card moved to its foundation.")
		case "m":
			col, ok := l.promptInt("Which column? (0-6): ")
			if !ok {
				return nil
			}
			message = l.report(l.game.MoveReserveToTableau(col), "Reserve card moved to the column.")
		case "mf":
			message = l.report(l.game.MoveReserveToFoundation(), "Reserve card moved to its foundation.")
		case "d":
			message = l.report(l.game.DiscardReserve(), "Reserve card discarded.")
		case "r":
			message = l.report(l.game.Reshuffle(), "Waste reshuffled into the stock.")
		default:
			message = "Unrecognised command."
		}
	}
}

// moveBetweenColumns prompts like the classic version: source column,
// destination column, and how many cards to bring along. The count is
// translated into a run start index; legality is the engine's call.
func (l *Loop) moveBetweenColumns(snap game.Snapshot) string {
	src, ok := l.promptInt("From column (0-6): ")
	if !ok {
		return ""
	}
	dst, ok := l.promptInt("To column (0-6): ")
	if !ok {
		return ""
	}
	count, ok := l.promptInt("Number of cards to move: ")
	if !ok {
		return ""
	}

	if src < 0 || src >= game.NumColumns || count < 1 {
		return "Invalid move!"
	}
	index := len(snap.Columns[src]) - count

	return l.report(l.game.MoveWithinTableau(src, index, dst), "Move made.")
}

func (l *Loop) report(err error, success string) string {
	if err != nil {
		return friendlyError(err)
	}
	return success
}

func (l *Loop) prompt(question string) (string, bool) {
	fmt.Fprint(l.out, question)
	if !l.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.scanner.Text()), true
}

func (l *Loop) promptInt(question string) (int, bool) {
	text, ok := l.prompt(question)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return -1, true
	}
	return n, true
}

func friendlyError(err error) string {
	switch err {
	case game.ErrInvalidSelection:
		return "Those cards can't be picked up together."
	case game.ErrInvalidMove:
		return "That column can't take those cards."
	case game.ErrIllegalMove:
		return "The foundation can't take that card."
	case game.ErrNoReserveCard:
		return "Reserve is empty! Draw a card first."
	case game.ErrEmptyStock:
		return "Stock and waste are both empty!"
	case game.ErrStockNotEmpty:
		return "Can't reshuffle while the stock still has cards."
	case game.ErrNoSuchColumn:
		return "Column numbers run 0 to 6."
	default:
		return err.Error()
	}
}
