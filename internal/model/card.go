package model

import "github.com/shopspring/decimal"

// CardSummary aggregates spend and cashback for one card suffix.
type CardSummary struct {
	LastDigits      string
	TotalSpent      decimal.Decimal
	AccruedCashback decimal.Decimal // Sum of issuer bonuses
	Cashback        decimal.Decimal // Computed by a cashback policy
}
