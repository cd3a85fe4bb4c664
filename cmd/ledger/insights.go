package main

import (
	"time"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/insights"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Monthly cashback and savings services",
	}

	cmd.AddCommand(a.insightsCategoriesCmd())
	cmd.AddCommand(a.insightsPiggyCmd())

	return cmd
}

func (a *app) insightsCategoriesCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Categories ranked by the cashback they earned in a month",
		Long: `Ranks the categories of one month by cashback earned: one percent of spend
plus issuer bonuses. --year and --month default to the month of --now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 || month == 0 {
				now, err := a.currentTime()
				if err != nil {
					return err
				}
				if year == 0 {
					year = now.Year()
				}
				if month == 0 {
					month = int(now.Month())
				}
			}
			if month < 1 || month > 12 {
				return common.NewUserError("--month must be between 1 and 12", nil)
			}

			txns, err := a.loadTransactions(cmd, model.FieldDate, model.FieldAmount)
			if err != nil {
				return err
			}
			c := insights.CashbackCategories(txns, year, time.Month(month))
			return writeJSON(cmd, format.CashbackCategories(c))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year")
	cmd.Flags().IntVar(&month, "month", 0, "month number, 1-12")

	return cmd
}

func (a *app) insightsPiggyCmd() *cobra.Command {
	var (
		month string
		limit int64
	)

	cmd := &cobra.Command{
		Use:   "piggy",
		Short: "Savings from rounding every purchase up",
		Long: `Rounds every spend of --month up to the next multiple of --limit (10, 50 or
100) and totals what the rounding would have saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txns, err := a.loadTransactions(cmd, model.FieldDate, model.FieldAmount)
			if err != nil {
				return err
			}
			p, err := insights.PiggyBank(txns, month, limit)
			if err != nil {
				return common.NewUserError("cannot compute piggy bank", err)
			}
			return writeJSON(cmd, format.PiggyBank(p))
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM")
	cmd.Flags().Int64Var(&limit, "limit", 50, "rounding step: 10, 50 or 100")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}
