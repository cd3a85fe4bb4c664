package main

import (
	"strings"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/search"
	"github.com/spf13/cobra"
)

func (a *app) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find transactions by description or category",
		Long: `Search prints the matching rows in the shape they were read, in statement
order. With no matches it prints [] or, when search.empty_mode is "message",
a single message object.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "text <query>",
		Short: "Descriptions containing a query, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, func(txns []model.Transaction) ([]model.Transaction, error) {
				return search.Text(txns, args[0]), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "phones",
		Short: "Descriptions containing a phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd, func(txns []model.Transaction) ([]model.Transaction, error) {
				return search.Phones(txns), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "transfers",
		Short: "Transfers to private persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd, func(txns []model.Transaction) ([]model.Transaction, error) {
				return search.Transfers(txns), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pattern <name>",
		Short: "Descriptions matching a named pattern from search.patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.settings.SearchEngine()
			if err != nil {
				return err
			}
			return a.runSearch(cmd, func(txns []model.Transaction) ([]model.Transaction, error) {
				matches, err := engine.Find(txns, args[0])
				if err != nil {
					return nil, common.NewUserError("known patterns: "+strings.Join(engine.Names(), ", "), err)
				}
				return matches, nil
			})
		},
	})

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, find func([]model.Transaction) ([]model.Transaction, error)) error {
	txns, err := a.loadTransactions(cmd)
	if err != nil {
		return err
	}

	matches, err := find(txns)
	if err != nil {
		return err
	}

	common.LogDebug(a.logger, "Searched transactions", common.Fields{
		"command": cmd.Name(),
		"matches": len(matches),
		"total":   len(txns),
	})

	return writeJSON(cmd, a.settings.Searcher().Results(matches))
}
