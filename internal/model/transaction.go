// Package model defines the core domain models used throughout the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field names a logical transaction attribute, independent of how an export labels it.
type Field string

// Transaction fields.
const (
	FieldDate          Field = "date"
	FieldAmount        Field = "amount"
	FieldCategory      Field = "category"
	FieldDescription   Field = "description"
	FieldCardNumber    Field = "card_identifier"
	FieldCashbackBonus Field = "cashback_bonus"
)

// Transaction represents a single card operation from an exported statement.
type Transaction struct {
	Date          time.Time
	Amount        decimal.Decimal  // Negative for money spent, positive for money received
	CashbackBonus *decimal.Decimal // Bonus already awarded by the issuer, nil when absent
	Category      string
	Description   string
	CardNumber    string
	Source        map[string]any // Row the transaction was read from, nil when built in code
}

// HasDate reports whether the transaction carries a parsed date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// IsSpend reports whether the transaction moved money out of the account.
func (t Transaction) IsSpend() bool {
	return t.Amount.IsNegative()
}

// Spend returns the magnitude of an outgoing amount, or zero for incoming ones.
func (t Transaction) Spend() decimal.Decimal {
	if !t.IsSpend() {
		return decimal.Zero
	}
	return t.Amount.Neg()
}

// LastDigits returns the trailing four characters of the card identifier.
func (t Transaction) LastDigits() string {
	runes := []rune(t.CardNumber)
	if len(runes) <= 4 {
		return t.CardNumber
	}
	return string(runes[len(runes)-4:])
}
