// Package format shapes engine results into their JSON documents.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/ingest"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// EmptyMode controls how a search with no matches is rendered.
type EmptyMode string

const (
	// EmptyArray renders no matches as [].
	EmptyArray EmptyMode = "array"
	// EmptyMessage renders no matches as [{"message": ...}].
	EmptyMessage EmptyMode = "message"
)

// DefaultEmptyMessage is the notice used in EmptyMessage mode.
const DefaultEmptyMessage = "Транзакции не найдены"

// ParseEmptyMode validates a mode name.
func ParseEmptyMode(name string) (EmptyMode, error) {
	switch EmptyMode(name) {
	case EmptyArray, EmptyMessage:
		return EmptyMode(name), nil
	default:
		return "", fmt.Errorf("%w: empty search mode %q", common.ErrInvalidConfig, name)
	}
}

// CategoryOutput is the category report document.
type CategoryOutput struct {
	Category      string `json:"category"`
	Period        string `json:"period"`
	TotalExpenses int64  `json:"total_expenses"`
}

// WeekdayOutput is the weekday report document.
type WeekdayOutput struct {
	ExpensesByWeekday WeekdayTotals `json:"expenses_by_weekday"`
}

// WeekdayTotals encodes as a JSON object in calendar order, Monday first.
type WeekdayTotals []model.WeekdayTotal

// MarshalJSON implements json.Marshaler.
func (w WeekdayTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, total := range w {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(total.Weekday.String()))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(total.Total, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Totals returns the buckets as a map keyed by weekday name.
func (w WeekdayTotals) Totals() map[string]int64 {
	out := make(map[string]int64, len(w))
	for _, total := range w {
		out[total.Weekday.String()] = total.Total
	}
	return out
}

// SplitOutput is the weekday-vs-weekend document.
type SplitOutput struct {
	Period          string `json:"period"`
	WeekdayExpenses int64  `json:"weekday_expenses"`
	WeekendExpenses int64  `json:"weekend_expenses"`
}

// CardOutput is one entry of the card cashback document.
type CardOutput struct {
	LastDigits string      `json:"last_digits"`
	TotalSpent json.Number `json:"total_spent"`
	Cashback   json.Number `json:"cashback"`
}

// OverviewOutput is the home page document.
type OverviewOutput struct {
	Greeting string       `json:"greeting"`
	Cards    []CardOutput `json:"cards"`
}

// CategoryCashbackOutput is one ranked category.
type CategoryCashbackOutput struct {
	Category string      `json:"category"`
	Cashback json.Number `json:"cashback"`
}

// CashbackCategoriesOutput is the monthly cashback categories document.
type CashbackCategoriesOutput struct {
	Categories []CategoryCashbackOutput `json:"categories"`
	Year       int                      `json:"year"`
	Month      int                      `json:"month"`
}

// PiggyBankOutput is the invest piggy bank document.
type PiggyBankOutput struct {
	Month         string      `json:"month"`
	SavedAmount   json.Number `json:"saved_amount"`
	RoundingLimit int64       `json:"rounding_limit"`
}

// MessageOutput is the notice rendered for an empty search.
type MessageOutput struct {
	Message string `json:"message"`
}

// Category shapes a category report.
func Category(r model.CategoryReport) CategoryOutput {
	return CategoryOutput{
		Category:      r.Category,
		TotalExpenses: r.TotalExpenses,
		Period:        r.Period,
	}
}

// Weekday shapes a weekday report.
func Weekday(r model.WeekdayReport) WeekdayOutput {
	totals := make(WeekdayTotals, len(r.Totals))
	copy(totals, r.Totals)
	return WeekdayOutput{ExpensesByWeekday: totals}
}

// Split shapes a weekday-vs-weekend report.
func Split(r model.SplitReport) SplitOutput {
	return SplitOutput{
		WeekdayExpenses: r.WeekdayExpenses,
		WeekendExpenses: r.WeekendExpenses,
		Period:          r.Period,
	}
}

// Cards shapes card summaries. The computed cashback is reported, not the accrued bonus.
func Cards(cards []model.CardSummary) []CardOutput {
	out := make([]CardOutput, 0, len(cards))
	for _, card := range cards {
		out = append(out, CardOutput{
			LastDigits: card.LastDigits,
			TotalSpent: Number(card.TotalSpent),
			Cashback:   Number(card.Cashback),
		})
	}
	return out
}

// Overview shapes the home page.
func Overview(o model.Overview) OverviewOutput {
	return OverviewOutput{
		Greeting: o.Greeting,
		Cards:    Cards(o.Cards),
	}
}

// CashbackCategories shapes a monthly category ranking.
func CashbackCategories(c model.CashbackCategories) CashbackCategoriesOutput {
	out := CashbackCategoriesOutput{
		Year:       c.Year,
		Month:      int(c.Month),
		Categories: make([]CategoryCashbackOutput, 0, len(c.Categories)),
	}
	for _, cat := range c.Categories {
		out.Categories = append(out.Categories, CategoryCashbackOutput{
			Category: cat.Category,
			Cashback: Number(cat.Cashback),
		})
	}
	return out
}

// PiggyBank shapes an invest piggy bank result.
func PiggyBank(p model.PiggyBank) PiggyBankOutput {
	return PiggyBankOutput{
		Month:         p.Month,
		RoundingLimit: p.RoundingLimit,
		SavedAmount:   Number(p.SavedAmount),
	}
}

// Number renders a decimal as an exact JSON number.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Searcher renders search matches as the rows they were read from.
type Searcher struct {
	Fields       ingest.FieldMap
	EmptyMode    EmptyMode
	EmptyMessage string
}

// NewSearcher creates a searcher that renders no matches as [].
func NewSearcher(fields ingest.FieldMap) *Searcher {
	return &Searcher{Fields: fields, EmptyMode: EmptyArray, EmptyMessage: DefaultEmptyMessage}
}

// Results shapes matches. The result is never nil so it encodes as an array.
func (s *Searcher) Results(txns []model.Transaction) []any {
	if len(txns) == 0 {
		if s.EmptyMode == EmptyMessage {
			msg := s.EmptyMessage
			if msg == "" {
				msg = DefaultEmptyMessage
			}
			return []any{MessageOutput{Message: msg}}
		}
		return []any{}
	}

	out := make([]any, 0, len(txns))
	for _, txn := range txns {
		out = append(out, s.Fields.Original(txn))
	}
	return out
}

// Marshal encodes v as indented JSON without escaping non-ASCII or HTML characters.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
