package core

// Package core holds the template helpers shared by every page.

import (
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/target/finance-web/internal/domain/finance"
)

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":      FormatMoney,
		"field":      RecordField,
		"recordID":   func(r finance.Record) string { return r.ID() },
		"amountOf":   RecordAmount,
		"isNegative": func(d decimal.Decimal) bool { return d.IsNegative() },
	}
}

// FormatMoney renders an amount with two decimal places.
// Accepts decimal.Decimal, float64 (JSON numbers) or strings; anything else prints as-is.
func FormatMoney(v any) string {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.StringFixed(2)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.StringFixed(2)
	case float64:
		return decimal.NewFromFloat(x).StringFixed(2)
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return x
		}
		return d.StringFixed(2)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// RecordField returns the named record field for display.
func RecordField(r finance.Record, name string) string {
	return r.Field(name)
}

// RecordAmount returns the record's income if set, otherwise its negated expense.
func RecordAmount(r finance.Record) string {
	if v, ok := r[finance.FieldIncome]; ok && v != nil && FormatMoney(v) != "0.00" {
		return "+" + FormatMoney(v)
	}
	if v, ok := r[finance.FieldExpense]; ok && v != nil {
		return "-" + FormatMoney(v)
	}
	return ""
}
