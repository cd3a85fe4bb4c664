package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/ingest"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/spf13/cobra"
)

// nowLayout is the timestamp format of --now and --until.
const nowLayout = "2006-01-02 15:04:05"

// loadTransactions reads the configured input and maps it, requiring fields on every row.
func (a *app) loadTransactions(cmd *cobra.Command, require ...model.Field) ([]model.Transaction, error) {
	rows, err := a.readRows(cmd)
	if err != nil {
		return nil, err
	}

	result, err := a.settings.Mapper(require...).Map(rows)
	if err != nil {
		return nil, common.NewUserError("could not read transactions", err)
	}

	for _, skip := range result.Skipped {
		common.LogError(a.logger, skip.Err, "Skipped malformed row", common.Fields{"row": skip.Row})
	}
	common.LogDebug(a.logger, "Loaded transactions", common.Fields{
		"rows":    len(rows),
		"loaded":  len(result.Transactions),
		"skipped": len(result.Skipped),
		"fields":  a.settings.Fields.Name,
	})

	return result.Transactions, nil
}

func (a *app) readRows(cmd *cobra.Command) ([]ingest.Row, error) {
	var r io.Reader = cmd.InOrStdin()
	if path := a.settings.Input; path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []ingest.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, common.NewUserError("input must be a JSON array of rows", err)
	}
	return rows, nil
}

// writeJSON prints v as a JSON document on stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	out, err := format.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
