package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Row is one exported statement line keyed by column name.
type Row = map[string]any

// Mode controls what happens to a row whose values cannot be parsed.
type Mode string

const (
	// Strict aborts on the first malformed row.
	Strict Mode = "strict"
	// SkipInvalid drops malformed rows and reports them in Result.Skipped.
	SkipInvalid Mode = "skip"
)

// ParseMode validates a mode name.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case Strict, SkipInvalid:
		return Mode(name), nil
	default:
		return "", fmt.Errorf("%w: date mode %q", common.ErrInvalidConfig, name)
	}
}

// Skip records a row dropped in SkipInvalid mode.
type Skip struct {
	Err error
	Row int
}

// Result holds the converted transactions and any rows that were dropped.
type Result struct {
	Transactions []model.Transaction
	Skipped      []Skip
}

// Mapper converts rows to transactions using a field map.
type Mapper struct {
	Fields  FieldMap
	Mode    Mode
	Require []model.Field // Keys every row must carry, even if the value is empty
}

// NewMapper creates a mapper in strict mode.
func NewMapper(fields FieldMap) *Mapper {
	return &Mapper{Fields: fields, Mode: Strict}
}

// Map converts rows in order. Schema errors always abort; parse errors abort
// only in Strict mode.
func (m *Mapper) Map(rows []Row) (Result, error) {
	result := Result{Transactions: make([]model.Transaction, 0, len(rows))}

	for i, row := range rows {
		if err := m.checkSchema(i, row); err != nil {
			return Result{}, err
		}

		txn, err := m.convert(i, row)
		if err != nil {
			var parseErr *common.ParseError
			if m.Mode == SkipInvalid && errors.As(err, &parseErr) {
				result.Skipped = append(result.Skipped, Skip{Row: i, Err: err})
				continue
			}
			return Result{}, err
		}
		txn.Source = row
		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

func (m *Mapper) checkSchema(i int, row Row) error {
	var missing []string
	for _, field := range m.Require {
		key := m.Fields.Key(field)
		if _, ok := row[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &common.SchemaError{Row: i, Fields: missing}
	}
	return nil
}

func (m *Mapper) convert(i int, row Row) (model.Transaction, error) {
	var txn model.Transaction

	dateKey := m.Fields.Key(model.FieldDate)
	date, err := m.parseDate(row[dateKey])
	if err != nil {
		return txn, common.NewDateError(i, dateKey, fmt.Sprint(row[dateKey]))
	}
	txn.Date = date

	amountKey := m.Fields.Key(model.FieldAmount)
	amount, ok, err := parseDecimal(row[amountKey])
	if err != nil {
		return txn, &common.ParseError{Row: i, Field: amountKey, Value: fmt.Sprint(row[amountKey]), Err: common.ErrInvalidAmount}
	}
	if ok {
		txn.Amount = amount
	}

	bonusKey := m.Fields.Key(model.FieldCashbackBonus)
	bonus, ok, err := parseDecimal(row[bonusKey])
	if err != nil {
		return txn, &common.ParseError{Row: i, Field: bonusKey, Value: fmt.Sprint(row[bonusKey]), Err: common.ErrInvalidAmount}
	}
	if ok {
		txn.CashbackBonus = &bonus
	}

	txn.Category = stringValue(row[m.Fields.Key(model.FieldCategory)])
	txn.Description = stringValue(row[m.Fields.Key(model.FieldDescription)])
	txn.CardNumber = stringValue(row[m.Fields.Key(model.FieldCardNumber)])

	return txn, nil
}

// parseDate returns the zero time for absent values and an error for malformed ones.
func (m *Mapper) parseDate(v any) (time.Time, error) {
	switch value := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return value, nil
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return time.Time{}, nil
		}
		for _, layout := range m.Fields.DateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, common.ErrInvalidDate
	default:
		return time.Time{}, common.ErrInvalidDate
	}
}

// parseDecimal reports ok=false for absent values (nil, blank, NaN).
func parseDecimal(v any) (decimal.Decimal, bool, error) {
	switch value := v.(type) {
	case nil:
		return decimal.Zero, false, nil
	case decimal.Decimal:
		return value, true, nil
	case float64:
		if math.IsNaN(value) {
			return decimal.Zero, false, nil
		}
		if math.IsInf(value, 0) {
			return decimal.Zero, false, common.ErrInvalidAmount
		}
		return decimal.NewFromFloat(value), true, nil
	case float32:
		return parseDecimal(float64(value))
	case int:
		return decimal.NewFromInt(int64(value)), true, nil
	case int64:
		return decimal.NewFromInt(value), true, nil
	case json.Number:
		return parseDecimal(value.String())
	case string:
		s := strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(strings.TrimSpace(value))
		if s == "" || strings.EqualFold(s, "nan") {
			return decimal.Zero, false, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false, common.ErrInvalidAmount
		}
		return d, true, nil
	default:
		return decimal.Zero, false, common.ErrInvalidAmount
	}
}

// stringValue stringifies identifiers that arrive as numbers.
func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		if math.IsNaN(value) {
			return ""
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
