// Package ingest converts exported statement rows into typed transactions.
package ingest

import (
	"fmt"
	"sort"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
)

// FieldMap names the row keys a statement export uses for each transaction field.
type FieldMap struct {
	Keys        map[model.Field]string
	Name        string
	DateLayouts []string // Tried in order; the first one is used when exporting
}

// Key returns the row key for field.
func (f FieldMap) Key(field model.Field) string {
	if key, ok := f.Keys[field]; ok {
		return key
	}
	return string(field)
}

// EnglishFields is the plain English schema with ISO dates.
var EnglishFields = FieldMap{
	Name: "english",
	Keys: map[model.Field]string{
		model.FieldDate:          "date",
		model.FieldAmount:        "amount",
		model.FieldCategory:      "category",
		model.FieldDescription:   "description",
		model.FieldCardNumber:    "card_identifier",
		model.FieldCashbackBonus: "cashback_bonus",
	},
	DateLayouts: []string{"2006-01-02", "2006-01-02 15:04:05", "2006-01-02T15:04:05Z07:00"},
}

// OperationFields is the bank export keyed by operation date.
var OperationFields = FieldMap{
	Name: "operations",
	Keys: map[model.Field]string{
		model.FieldDate:          "Дата операции",
		model.FieldAmount:        "Сумма операции",
		model.FieldCategory:      "Категория",
		model.FieldDescription:   "Описание",
		model.FieldCardNumber:    "Номер карты",
		model.FieldCashbackBonus: "Бонусы (включая кэшбэк)",
	},
	DateLayouts: []string{"02.01.2006 15:04:05", "02.01.2006"},
}

// PaymentFields is the bank export keyed by payment date.
var PaymentFields = FieldMap{
	Name: "payments",
	Keys: map[model.Field]string{
		model.FieldDate:          "Дата платежа",
		model.FieldAmount:        "Сумма платежа",
		model.FieldCategory:      "Категория",
		model.FieldDescription:   "Описание",
		model.FieldCardNumber:    "Номер карты",
		model.FieldCashbackBonus: "Бонусы (включая кэшбэк)",
	},
	DateLayouts: []string{"02.01.2006", "02.01.2006 15:04:05"},
}

var builtinFields = map[string]FieldMap{
	EnglishFields.Name:   EnglishFields,
	OperationFields.Name: OperationFields,
	PaymentFields.Name:   PaymentFields,
}

// FieldMapByName returns one of the built-in field maps.
func FieldMapByName(name string) (FieldMap, error) {
	fields, ok := builtinFields[name]
	if !ok {
		names := make([]string, 0, len(builtinFields))
		for n := range builtinFields {
			names = append(names, n)
		}
		sort.Strings(names)
		return FieldMap{}, fmt.Errorf("%w: field map %q (want one of %v)", common.ErrInvalidConfig, name, names)
	}
	return fields, nil
}
