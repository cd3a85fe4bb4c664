package ingest

import (
	"encoding/json"

	"github.com/Veraticus/card-ledger/internal/model"
)

// Export renders a transaction back into a row keyed by the field map.
// Dates use the map's first layout; absent dates and bonuses become nil.
func (f FieldMap) Export(txn model.Transaction) Row {
	row := Row{
		f.Key(model.FieldAmount):      json.Number(txn.Amount.String()),
		f.Key(model.FieldCategory):    txn.Category,
		f.Key(model.FieldDescription): txn.Description,
		f.Key(model.FieldCardNumber):  txn.CardNumber,
	}

	row[f.Key(model.FieldDate)] = nil
	if txn.HasDate() && len(f.DateLayouts) > 0 {
		row[f.Key(model.FieldDate)] = txn.Date.Format(f.DateLayouts[0])
	}

	row[f.Key(model.FieldCashbackBonus)] = nil
	if txn.CashbackBonus != nil {
		row[f.Key(model.FieldCashbackBonus)] = json.Number(txn.CashbackBonus.String())
	}

	return row
}

// Original returns the row txn was read from, or its export when it was built in code.
func (f FieldMap) Original(txn model.Transaction) Row {
	if txn.Source != nil {
		return txn.Source
	}
	return f.Export(txn)
}
