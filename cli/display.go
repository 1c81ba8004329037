package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
)

const cellWidth = 7

var (
	redFace   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	blackFace = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	cardBack  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	label     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderCard renders one card cell: a dim back for face-down cards,
// a red or white face otherwise
func renderCard(c deck.Card) string {
	if !c.FaceUp {
		return cardBack.Render("[#]")
	}

	face := fmt.Sprintf("[%s%s]", c.Rank.Symbol(), c.Suit.Symbol())
	if c.Color() == deck.Red {
		return redFace.Render(face)
	}
	return blackFace.Render(face)
}

// pad right-fills a rendered cell to the column width. lipgloss.Width
// ignores the color escape codes.
func pad(cell string) string {
	if w := lipgloss.Width(cell); w < cellWidth {
		return cell + strings.Repeat(" ", cellWidth-w)
	}
	return cell
}

// RenderBoard draws the whole table: column headers, the tableau
// grid, the foundation row and the stock/waste/reserve line
func RenderBoard(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(label.Render("--- TABLEAU ---"))
	b.WriteString("\n")

	for i := range snap.Columns {
		b.WriteString(pad(label.Render(fmt.Sprintf("(%d)", i))))
	}
	b.WriteString("\n")

	maxLen := 0
	for _, col := range snap.Columns {
		if len(col) > maxLen {
			maxLen = len(col)
		}
	}

	for row := 0; row < maxLen; row++ {
		for _, col := range snap.Columns {
			if row < len(col) {
				b.WriteString(pad(renderCard(col[row])))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(label.Render("--- FOUNDATIONS ---"))
	b.WriteString("\n")
	for _, f := range snap.Foundations {
		cell := fmt.Sprintf("%s: [  ]", f.Suit.Symbol())
		if f.Top != nil {
			cell = fmt.Sprintf("%s: %s", f.Suit.Symbol(), renderCard(*f.Top))
		}
		b.WriteString(cell)
		b.WriteString("    ")
	}
	b.WriteString("\n")

	reserve := "--"
	if snap.Reserve != nil {
		reserve = renderCard(*snap.Reserve)
	}
	b.WriteString(fmt.Sprintf("Stock: %d   Waste: %d   Reserve: %s\n",
		snap.StockCount, snap.WasteCount, reserve))

	return b.String()
}
