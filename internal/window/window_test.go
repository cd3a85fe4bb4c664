package window

import (
	"testing"
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func txn(date time.Time, amount int64) model.Transaction {
	return model.Transaction{Date: date, Amount: decimal.NewFromInt(amount)}
}

func TestNewRange(t *testing.T) {
	r := NewRange(at(2020, time.January, 1, 15), DefaultDays)

	assert.Equal(t, at(2020, time.January, 1, 0), r.Start)
	assert.Equal(t, at(2020, time.March, 31, 0), r.End)
	assert.Equal(t, "2020-01-01 to 2020-03-31", r.Period())
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(at(2020, time.January, 1, 0), DefaultDays)

	tests := []struct {
		date time.Time
		name string
		want bool
	}{
		{name: "first day", date: at(2020, time.January, 1, 0), want: true},
		{name: "last day evening", date: at(2020, time.March, 31, 23), want: true},
		{name: "day before", date: at(2019, time.December, 31, 23), want: false},
		{name: "day after", date: at(2020, time.April, 1, 0), want: false},
		{name: "undated", date: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.date))
		})
	}
}

func TestRange_Filter(t *testing.T) {
	input := []model.Transaction{
		txn(at(2020, time.January, 3, 0), 3),
		txn(time.Time{}, 99),
		txn(at(2020, time.January, 1, 0), 1),
		txn(at(2020, time.June, 1, 0), 6),
	}

	got := NewRange(at(2020, time.January, 1, 0), DefaultDays).Filter(input)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Amount.IntPart())
	assert.Equal(t, int64(1), got[1].Amount.IntPart())
	assert.Len(t, input, 4, "input must not be modified")
}

func TestUntil(t *testing.T) {
	input := []model.Transaction{
		txn(at(2020, time.January, 1, 12), 100),
		txn(at(2021, time.January, 1, 12), 200),
		txn(time.Time{}, 300),
	}

	cutoff := time.Date(2020, time.December, 31, 23, 59, 59, 0, time.UTC)
	got, undated := Until(input, cutoff)

	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].Amount.IntPart())
	assert.Equal(t, 1, undated)
}

func TestUntil_InclusiveCutoff(t *testing.T) {
	cutoff := at(2021, time.December, 31, 16)
	got, _ := Until([]model.Transaction{txn(cutoff, 5)}, cutoff)

	assert.Len(t, got, 1)
}

func TestFrom(t *testing.T) {
	input := []model.Transaction{
		txn(at(2019, time.December, 31, 23), 1),
		txn(at(2020, time.January, 1, 8), 2),
		txn(time.Time{}, 3),
		txn(at(2030, time.January, 1, 0), 4),
	}

	got := From(input, at(2020, time.January, 1, 12))

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].Amount.IntPart())
	assert.Equal(t, int64(4), got[1].Amount.IntPart())
}

func TestDated(t *testing.T) {
	got := Dated([]model.Transaction{txn(time.Time{}, 1), txn(at(2020, time.May, 5, 0), 2)})

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].Amount.IntPart())
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2020-02-29")
	require.NoError(t, err)
	assert.Equal(t, at(2020, time.February, 29, 0), day)

	_, err = ParseDay("2020-02-30")
	assert.Error(t, err)
}
