package finance

// Package finance contains the client-side view of the finance backend's payloads.
// The backend owns the schema; these types only carry what the frontend displays.

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record is one financial entry as returned by the backend.
// The frontend treats it as an untyped bag of fields and never validates its shape.
type Record map[string]any

// Well-known record fields rendered by the views.
const (
	FieldID       = "id"
	FieldIncome   = "income"
	FieldExpense  = "expense"
	FieldCategory = "category"
	FieldDate     = "recordDate"
	FieldNotes    = "notes"
)

// ID returns the record identifier formatted for use in a URL path, or "" if absent.
func (r Record) ID() string {
	v, ok := r[FieldID]
	if !ok || v == nil {
		return ""
	}
	switch id := v.(type) {
	case float64:
		// encoding/json decodes every number into float64.
		if id == float64(int64(id)) {
			return fmt.Sprintf("%d", int64(id))
		}
		return fmt.Sprintf("%v", id)
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

// Field returns the named field formatted for display, or "" if absent.
func (r Record) Field(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Credentials is the login payload accepted by POST /users/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChange is the payload accepted by POST /users/change-password.
type PasswordChange struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CategoryTotal is a per-category sum reported by the statistics endpoint.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Statistics is the decoded body of GET /finance/statistics.
// Values are computed by the backend; the frontend only displays them.
type Statistics struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Balance           decimal.Decimal `json:"balance"`
	IncomeByCategory  []CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
}
