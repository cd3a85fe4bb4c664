// Package report aggregates transaction amounts by category and day of week.
//
// All sums are truncated toward zero to whole units, never rounded:
// a category total of -99.9 is reported as -99.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/window"
	"github.com/shopspring/decimal"
)

// MatchPolicy controls how category labels are compared.
type MatchPolicy string

const (
	// MatchNormalized compares trimmed, lower-cased labels.
	MatchNormalized MatchPolicy = "normalized"
	// MatchExact compares labels byte for byte.
	MatchExact MatchPolicy = "exact"
)

// ParseMatchPolicy validates a policy name.
func ParseMatchPolicy(name string) (MatchPolicy, error) {
	switch MatchPolicy(name) {
	case MatchNormalized, MatchExact:
		return MatchPolicy(name), nil
	default:
		return "", fmt.Errorf("%w: category match %q", common.ErrInvalidConfig, name)
	}
}

// Fields each report needs every input row to carry.
var (
	CategoryFields = []model.Field{model.FieldDate, model.FieldAmount, model.FieldCategory}
	WeekdayFields  = []model.Field{model.FieldDate, model.FieldAmount}
	SplitFields    = []model.Field{model.FieldDate, model.FieldAmount}
)

// Engine produces reports. It holds only configuration and is safe for concurrent use.
type Engine struct {
	match      MatchPolicy
	windowDays int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMatchPolicy sets how category labels are compared.
func WithMatchPolicy(policy MatchPolicy) Option {
	return func(e *Engine) {
		e.match = policy
	}
}

// WithWindowDays sets the length of the category and split windows.
func WithWindowDays(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.windowDays = days
		}
	}
}

// NewEngine creates an engine with normalized matching and a 90-day window.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		match:      MatchNormalized,
		windowDays: window.DefaultDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Window returns the reporting window starting at start.
func (e *Engine) Window(start time.Time) window.Range {
	return window.NewRange(start, e.windowDays)
}

// sameCategory compares labels under the engine's policy.
func (e *Engine) sameCategory(a, b string) bool {
	if e.match == MatchExact {
		return a == b
	}
	return normalize(a) == normalize(b)
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// truncate drops the fractional part of sum.
func truncate(sum decimal.Decimal) int64 {
	return sum.IntPart()
}
