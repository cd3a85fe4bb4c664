package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Spend(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		wantSpend string
		isSpend   bool
	}{
		{name: "outgoing", amount: "-160.89", wantSpend: "160.89", isSpend: true},
		{name: "incoming", amount: "500", wantSpend: "0", isSpend: false},
		{name: "zero", amount: "0", wantSpend: "0", isSpend: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Amount: decimal.RequireFromString(tt.amount)}
			assert.Equal(t, tt.isSpend, txn.IsSpend())
			assert.True(t, decimal.RequireFromString(tt.wantSpend).Equal(txn.Spend()))
		})
	}
}

func TestTransaction_LastDigits(t *testing.T) {
	tests := []struct {
		card string
		want string
	}{
		{card: "1234567890123456", want: "3456"},
		{card: "*7197", want: "7197"},
		{card: "812", want: "812"},
		{card: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			assert.Equal(t, tt.want, Transaction{CardNumber: tt.card}.LastDigits())
		})
	}
}

func TestTransaction_HasDate(t *testing.T) {
	assert.False(t, Transaction{}.HasDate())
	assert.True(t, Transaction{Date: time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC)}.HasDate())
}
