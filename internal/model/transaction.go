// Package model defines the core domain types shared across the application.
package model

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// Transaction types as reported by the analysis service.
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// DefaultCategory is used when the service provides neither a category
// nor a type for a transaction.
const DefaultCategory = "other"

// Transaction is a single parsed transaction returned by the analysis
// service. Instances are immutable once received; the session replaces
// the whole list on every successful call.
type Transaction struct {
	Type     TransactionType `json:"type"`
	Category string          `json:"category,omitempty"`
	Date     string          `json:"date,omitempty"` // free-form, as extracted from the message
	Amount   float64         `json:"amount"`
}

// GroupKey returns the bucket a transaction aggregates under:
// category first, then type, then the literal default.
func (t Transaction) GroupKey() string {
	if t.Category != "" {
		return t.Category
	}
	if t.Type != "" {
		return string(t.Type)
	}
	return DefaultCategory
}

// IsCredit reports whether the transaction adds money to the account.
func (t Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}
