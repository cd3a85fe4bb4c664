package config

import (
	"fmt"
	"sort"

	"github.com/Veraticus/card-ledger/internal/cashback"
	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/ingest"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/report"
	"github.com/Veraticus/card-ledger/internal/search"
	"github.com/Veraticus/card-ledger/internal/window"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyInput          = "input"
	KeyFields         = "ingest.fields"
	KeyDateMode       = "ingest.date_mode"
	KeyWindowDays     = "report.window_days"
	KeyCategoryMatch  = "report.category_match"
	KeyEmptyMode      = "search.empty_mode"
	KeyEmptyMessage   = "search.empty_message"
	KeySearchPatterns = "search.patterns"
	KeyCashbackPolicy = "cashback.policy"
)

// Settings is the validated application configuration.
type Settings struct {
	Fields         ingest.FieldMap
	CashbackPolicy cashback.Policy
	LogLevel       string
	LogFormat      string
	Input          string
	DateMode       ingest.Mode
	CategoryMatch  report.MatchPolicy
	EmptyMode      format.EmptyMode
	EmptyMessage   string
	Patterns       []search.Pattern // Added to the built-in patterns
	WindowDays     int
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyInput, "-")
	v.SetDefault(KeyFields, ingest.EnglishFields.Name)
	v.SetDefault(KeyDateMode, string(ingest.Strict))
	v.SetDefault(KeyWindowDays, window.DefaultDays)
	v.SetDefault(KeyCategoryMatch, string(report.MatchNormalized))
	v.SetDefault(KeyEmptyMode, string(format.EmptyArray))
	v.SetDefault(KeyEmptyMessage, format.DefaultEmptyMessage)
	v.SetDefault(KeyCashbackPolicy, cashback.PercentagePolicy{}.Name())
}

// Load validates the values held by v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		Input:        ExpandPath(v.GetString(KeyInput)),
		EmptyMessage: v.GetString(KeyEmptyMessage),
		WindowDays:   v.GetInt(KeyWindowDays),
	}

	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return nil, err
	}
	if s.WindowDays <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidConfig, KeyWindowDays, s.WindowDays)
	}

	var err error
	if s.Fields, err = ingest.FieldMapByName(v.GetString(KeyFields)); err != nil {
		return nil, err
	}
	if s.DateMode, err = ingest.ParseMode(v.GetString(KeyDateMode)); err != nil {
		return nil, err
	}
	if s.CategoryMatch, err = report.ParseMatchPolicy(v.GetString(KeyCategoryMatch)); err != nil {
		return nil, err
	}
	if s.EmptyMode, err = format.ParseEmptyMode(v.GetString(KeyEmptyMode)); err != nil {
		return nil, err
	}
	if s.CashbackPolicy, err = cashback.PolicyByName(v.GetString(KeyCashbackPolicy)); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	custom := v.GetStringMapString(KeySearchPatterns)
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Patterns = append(s.Patterns, search.Pattern{Name: name, Regex: custom[name]})
	}

	return s, nil
}

// Mapper returns an ingest mapper that requires fields on every row.
func (s *Settings) Mapper(require ...model.Field) *ingest.Mapper {
	return &ingest.Mapper{Fields: s.Fields, Mode: s.DateMode, Require: require}
}

// ReportEngine returns a report engine using the configured window and matching.
func (s *Settings) ReportEngine() *report.Engine {
	return report.NewEngine(
		report.WithMatchPolicy(s.CategoryMatch),
		report.WithWindowDays(s.WindowDays),
	)
}

// SearchEngine compiles the built-in and configured patterns.
func (s *Settings) SearchEngine() (*search.Engine, error) {
	if len(s.Patterns) == 0 {
		return search.Default(), nil
	}
	patterns := append(search.DefaultPatterns(), s.Patterns...)
	engine, err := search.NewEngine(patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return engine, nil
}

// Searcher returns the search result formatter.
func (s *Settings) Searcher() *format.Searcher {
	return &format.Searcher{Fields: s.Fields, EmptyMode: s.EmptyMode, EmptyMessage: s.EmptyMessage}
}
