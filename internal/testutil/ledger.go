// Package testutil provides fixtures for building transaction ledgers in tests.
//
// Example:
//
//	txns := testutil.NewLedger(t).
//		Add("2020-01-01", "100", testutil.Category("food")).
//		Add("2020-01-02", "-50", testutil.Card("1234567890123456")).
//		Build()
package testutil

import (
	"testing"
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Date parses "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" in UTC, failing the test otherwise.
// An empty string yields the zero time.
func Date(t testing.TB, s string) time.Time {
	t.Helper()
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	t.Fatalf("bad fixture date %q", s)
	return time.Time{}
}

// Amount parses a decimal literal, failing the test otherwise.
func Amount(t testing.TB, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad fixture amount %q: %v", s, err)
	}
	return d
}

// TxnOption customizes a fixture transaction.
type TxnOption func(*model.Transaction)

// Category sets the category label.
func Category(category string) TxnOption {
	return func(txn *model.Transaction) { txn.Category = category }
}

// Description sets the free-text description.
func Description(description string) TxnOption {
	return func(txn *model.Transaction) { txn.Description = description }
}

// Card sets the card identifier.
func Card(number string) TxnOption {
	return func(txn *model.Transaction) { txn.CardNumber = number }
}

// Bonus sets the issuer cashback bonus.
func Bonus(amount string) TxnOption {
	return func(txn *model.Transaction) {
		d := decimal.RequireFromString(amount)
		txn.CashbackBonus = &d
	}
}

// Ledger accumulates fixture transactions in insertion order.
type Ledger struct {
	t    testing.TB
	txns []model.Transaction
}

// NewLedger starts an empty ledger.
func NewLedger(t testing.TB) *Ledger {
	t.Helper()
	return &Ledger{t: t}
}

// Add appends a transaction dated date with the given amount.
func (l *Ledger) Add(date, amount string, opts ...TxnOption) *Ledger {
	l.t.Helper()
	txn := model.Transaction{
		Date:   Date(l.t, date),
		Amount: Amount(l.t, amount),
	}
	for _, opt := range opts {
		opt(&txn)
	}
	l.txns = append(l.txns, txn)
	return l
}

// Build returns a copy of the accumulated transactions.
func (l *Ledger) Build() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// ThreeDayLedger is food/transport/food on Wed 1, Thu 2 and Fri 3 January 2020.
func ThreeDayLedger(t testing.TB) []model.Transaction {
	t.Helper()
	return NewLedger(t).
		Add("2020-01-01", "100", Category("food")).
		Add("2020-01-02", "50", Category("transport")).
		Add("2020-01-03", "200", Category("food")).
		Build()
}

// SearchLedger holds descriptions for phone, transfer and plain-text searches.
func SearchLedger(t testing.TB) []model.Transaction {
	t.Helper()
	return NewLedger(t).
		Add("2024-07-08", "1500", Description("Оплата услуг +79991234567")).
		Add("2024-07-09", "3000", Description("Перевод физическому лицу")).
		Add("2024-07-10", "500", Description("Покупка в магазине")).
		Build()
}
