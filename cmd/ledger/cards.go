package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/card-ledger/internal/cashback"
	"github.com/Veraticus/card-ledger/internal/cli"
	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/window"
	"github.com/spf13/cobra"
)

func (a *app) cardsCmd() *cobra.Command {
	var (
		until     string
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Spend and cashback per card",
		Long: `Summarizes spend per card, identified by its last four digits, in the order
cards first appear in the statement. With --until only transactions dated at
or before that moment count. Cashback follows cashback.policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txns, err := a.loadTransactions(cmd, cashback.CardFields...)
			if err != nil {
				return err
			}

			if until != "" {
				cutoff, err := time.Parse(nowLayout, until)
				if err != nil {
					return common.NewUserError("--until must look like 2021-12-31 16:44:00", err)
				}
				var undated int
				txns, undated = window.Until(txns, cutoff)
				common.LogDebug(a.logger, "Applied cutoff", common.Fields{"until": until, "undated": undated})
			}

			cards, withoutCard := cashback.Aggregate(txns)
			if withoutCard > 0 {
				common.LogInfo(a.logger, "Ignored transactions without a card", common.Fields{"count": withoutCard})
			}
			cards = a.settings.CashbackPolicy.Apply(cards)

			if showTable {
				out := cli.RenderCards("Cards", cards)
				if withoutCard > 0 {
					out += "\n" + cli.FormatWarning(fmt.Sprintf("%d transactions without a card were left out", withoutCard))
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}
			return writeJSON(cmd, format.Cards(cards))
		},
	}

	cmd.Flags().StringVar(&until, "until", "", "only count transactions at or before 'YYYY-MM-DD HH:MM:SS'")
	cmd.Flags().BoolVar(&showTable, "table", false, "render a table instead of JSON")

	return cmd
}
