package cli

import (
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderCards draws card summaries as a bordered table under a greeting-style title.
func RenderCards(title string, cards []model.CardSummary) string {
	if len(cards) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			FormatTitle(title),
			SubtleStyle.Render("No card transactions found."),
		)
	}

	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{
			"*" + card.LastDigits,
			card.TotalSpent.StringFixed(2),
			card.AccruedCashback.StringFixed(2),
			card.Cashback.StringFixed(2),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers("Card", "Spent", "Bonuses", "Cashback").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 3:
				return NumberCellStyle.Inherit(SuccessStyle)
			case col > 0:
				return NumberCellStyle
			default:
				return TableCellStyle
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, FormatTitle(title), t.Render())
}
