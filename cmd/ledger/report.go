package main

import (
	"encoding/json"
	"time"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/report"
	"github.com/Veraticus/card-ledger/internal/window"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports over a window of days",
		Long: `Spending reports sum what was spent inside a window of days that begins at
--start (the window length comes from report.window_days, 90 by default).
Sums are whole currency units truncated toward zero.`,
	}

	cmd.AddCommand(a.reportCategoryCmd())
	cmd.AddCommand(a.reportWeekdayCmd())
	cmd.AddCommand(a.reportSplitCmd())
	cmd.AddCommand(a.reportAllCmd())

	return cmd
}

func (a *app) reportCategoryCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Total spend in one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseStart(start)
			if err != nil {
				return err
			}
			txns, err := a.loadTransactions(cmd, report.CategoryFields...)
			if err != nil {
				return err
			}
			r := a.settings.ReportEngine().Category(txns, args[0], from)
			return writeJSON(cmd, format.Category(r))
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *app) reportWeekdayCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "weekday",
		Short: "Total spend per day of week",
		Long: `Total spend per day of week, Monday first. Without --start every dated
transaction counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var from *time.Time
			if start != "" {
				day, err := parseStart(start)
				if err != nil {
					return err
				}
				from = &day
			}
			txns, err := a.loadTransactions(cmd, report.WeekdayFields...)
			if err != nil {
				return err
			}
			return writeJSON(cmd, format.Weekday(a.settings.ReportEngine().Weekday(txns, from)))
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD)")

	return cmd
}

func (a *app) reportSplitCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Weekday versus weekend spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseStart(start)
			if err != nil {
				return err
			}
			txns, err := a.loadTransactions(cmd, report.SplitFields...)
			if err != nil {
				return err
			}
			return writeJSON(cmd, format.Split(a.settings.ReportEngine().Split(txns, from)))
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// allReports is the combined document written by report all.
type allReports struct {
	Category json.RawMessage `json:"category"`
	Weekday  json.RawMessage `json:"weekday"`
	Split    json.RawMessage `json:"split"`
}

func (a *app) reportAllCmd() *cobra.Command {
	var (
		start    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Category, weekday and split reports over one statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseStart(start)
			if err != nil {
				return err
			}
			txns, err := a.loadTransactions(cmd, report.CategoryFields...)
			if err != nil {
				return err
			}
			out, err := a.runAll(txns, category, from)
			if err != nil {
				return err
			}
			return writeJSON(cmd, out)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "category for the category report")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

// runAll runs the three reports concurrently. The engine only reads txns.
func (a *app) runAll(txns []model.Transaction, category string, start time.Time) (allReports, error) {
	engine := a.settings.ReportEngine()

	var (
		out allReports
		g   errgroup.Group
	)

	g.Go(func() error {
		var err error
		out.Category, err = format.Marshal(format.Category(engine.Category(txns, category, start)))
		return err
	})
	g.Go(func() error {
		var err error
		out.Weekday, err = format.Marshal(format.Weekday(engine.Weekday(txns, &start)))
		return err
	})
	g.Go(func() error {
		var err error
		out.Split, err = format.Marshal(format.Split(engine.Split(txns, start)))
		return err
	})

	if err := g.Wait(); err != nil {
		return allReports{}, err
	}

	common.LogDebug(a.logger, "Built all reports", common.Fields{
		"category":     category,
		"transactions": len(txns),
		"window":       engine.Window(start).Period(),
	})

	return out, nil
}

func parseStart(s string) (time.Time, error) {
	day, err := window.ParseDay(s)
	if err != nil {
		return time.Time{}, common.NewUserError("--start must look like 2021-12-31", err)
	}
	return day, nil
}
