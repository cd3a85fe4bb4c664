package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/card-ledger/internal/cashback"
	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/format"
	"github.com/Veraticus/card-ledger/internal/ingest"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/report"
	"github.com/Veraticus/card-ledger/internal/search"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, "-", s.Input)
	assert.Equal(t, ingest.EnglishFields.Name, s.Fields.Name)
	assert.Equal(t, ingest.Strict, s.DateMode)
	assert.Equal(t, 90, s.WindowDays)
	assert.Equal(t, report.MatchNormalized, s.CategoryMatch)
	assert.Equal(t, format.EmptyArray, s.EmptyMode)
	assert.Equal(t, format.DefaultEmptyMessage, s.EmptyMessage)
	assert.Equal(t, cashback.PercentagePolicy{}, s.CashbackPolicy)
	assert.Empty(t, s.Patterns)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ingest:
  fields: operations
  date_mode: skip
report:
  window_days: 30
  category_match: exact
search:
  empty_mode: message
  empty_message: ничего
  patterns:
    taxi: такси|яндекс\s*go
cashback:
  policy: floor
`), 0o600))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ingest.OperationFields.Name, s.Fields.Name)
	assert.Equal(t, ingest.SkipInvalid, s.DateMode)
	assert.Equal(t, 30, s.WindowDays)
	assert.Equal(t, report.MatchExact, s.CategoryMatch)
	assert.Equal(t, format.EmptyMessage, s.EmptyMode)
	assert.Equal(t, "ничего", s.EmptyMessage)
	assert.Equal(t, "floor", s.CashbackPolicy.Name())
	assert.Equal(t, []search.Pattern{{Name: "taxi", Regex: `такси|яндекс\s*go`}}, s.Patterns)

	engine, err := s.SearchEngine()
	require.NoError(t, err)
	assert.Equal(t, []string{search.PatternPhone, search.PatternTransfer, "taxi"}, engine.Names())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{key: KeyLogLevel, value: "loud"},
		{key: KeyFields, value: "xlsx"},
		{key: KeyDateMode, value: "lenient"},
		{key: KeyWindowDays, value: 0},
		{key: KeyCategoryMatch, value: "fuzzy"},
		{key: KeyEmptyMode, value: "null"},
		{key: KeyCashbackPolicy, value: "tiered"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestSettings_SearchEngine_BadPattern(t *testing.T) {
	s := &Settings{Patterns: []search.Pattern{{Name: "broken", Regex: "(("}}}

	_, err := s.SearchEngine()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestSettings_Builders(t *testing.T) {
	v := newViper()
	v.Set(KeyFields, "payments")
	v.Set(KeyDateMode, "skip")
	s, err := Load(v)
	require.NoError(t, err)

	mapper := s.Mapper(report.CategoryFields...)
	assert.Equal(t, ingest.SkipInvalid, mapper.Mode)
	assert.Equal(t, "Дата платежа", mapper.Fields.Key(model.FieldDate))
	assert.Equal(t, report.CategoryFields, mapper.Require)

	searcher := s.Searcher()
	assert.Equal(t, format.EmptyArray, searcher.EmptyMode)
	assert.NotNil(t, s.ReportEngine())

	engine, err := s.SearchEngine()
	require.NoError(t, err)
	assert.Same(t, search.Default(), engine)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("LEDGER_TEST_DIR", "/tmp/ledger")

	assert.Equal(t, "-", ExpandPath("-"))
	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "statements/ops.json"), ExpandPath("~/statements/ops.json"))
	assert.Equal(t, "/tmp/ledger/ops.json", ExpandPath("$LEDGER_TEST_DIR/ops.json"))
	assert.True(t, strings.HasPrefix(ExpandPath("/abs/path"), "/abs"))
}
