// Package search classifies transactions by their free-text description.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
)

// Pattern is a named description classifier.
type Pattern struct {
	Name  string
	Regex string
}

type compiledPattern struct {
	regex *regexp.Regexp
	Pattern
}

// Engine matches transactions against compiled patterns.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	byName   map[string]compiledPattern
	patterns []compiledPattern
}

// NewEngine compiles patterns. Matching is always case-insensitive.
func NewEngine(patterns []Pattern) (*Engine, error) {
	e := &Engine{
		byName:   make(map[string]compiledPattern, len(patterns)),
		patterns: make([]compiledPattern, 0, len(patterns)),
	}

	for _, p := range patterns {
		if _, dup := e.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate pattern %s", p.Name)
		}

		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}

		cp := compiledPattern{Pattern: p, regex: regex}
		e.byName[p.Name] = cp
		e.patterns = append(e.patterns, cp)
	}

	return e, nil
}

// Names lists pattern names in registration order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.patterns))
	for _, p := range e.patterns {
		names = append(names, p.Name)
	}
	return names
}

// Find returns the transactions whose description matches the named pattern.
func (e *Engine) Find(txns []model.Transaction, name string) ([]model.Transaction, error) {
	p, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownPattern, name)
	}
	return filter(txns, func(txn model.Transaction) bool {
		return p.regex.MatchString(txn.Description)
	}), nil
}

var defaultEngine = mustEngine(DefaultPatterns())

func mustEngine(patterns []Pattern) *Engine {
	e, err := NewEngine(patterns)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns an engine holding DefaultPatterns.
func Default() *Engine {
	return defaultEngine
}

// Phones returns transactions whose description contains a phone number.
func Phones(txns []model.Transaction) []model.Transaction {
	found, _ := defaultEngine.Find(txns, PatternPhone)
	return found
}

// Transfers returns transactions describing a transfer to a private person.
func Transfers(txns []model.Transaction) []model.Transaction {
	found, _ := defaultEngine.Find(txns, PatternTransfer)
	return found
}

// Text returns transactions whose description contains query, ignoring case.
// An empty query matches everything.
func Text(txns []model.Transaction, query string) []model.Transaction {
	needle := strings.ToLower(query)
	return filter(txns, func(txn model.Transaction) bool {
		return strings.Contains(strings.ToLower(txn.Description), needle)
	})
}

// filter keeps matching transactions in order without touching txns.
func filter(txns []model.Transaction, keep func(model.Transaction) bool) []model.Transaction {
	out := make([]model.Transaction, 0)
	for _, txn := range txns {
		if keep(txn) {
			out = append(out, txn)
		}
	}
	return out
}
