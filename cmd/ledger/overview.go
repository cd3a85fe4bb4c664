package main

import (
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/overview"
	"github.com/spf13/cobra"
)

func (a *app) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Greeting and card cashback as of now",
		Long: `Overview greets by the hour of --now and summarizes every card over the
transactions dated at or before --now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now, err := a.currentTime()
			if err != nil {
				return err
			}
			txns, err := a.loadTransactions(cmd, model.FieldDate, model.FieldAmount)
			if err != nil {
				return err
			}
			o := overview.NewBuilder(a.logger, a.settings.CashbackPolicy).Build(txns, now)
			return writeJSON(cmd, format.Overview(o))
		},
	}
}
