package models

import (
	"strings"
	"time"
)

// DefaultCategory is assigned when a record arrives without one.
const DefaultCategory = "Other"

// RawTransaction is a loosely-shaped transaction as received from an
// external store or bulk import. Every field is optional and may be
// malformed; Normalize collapses it into a structurally valid Transaction.
type RawTransaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Tags        TagList `json:"tags"`
}

// Normalize converts a raw record into a canonical Transaction. It is total:
// it never fails, and every unparsable field degrades to a safe default.
// Applying it to an already-normalized record is a no-op.
func (r RawTransaction) Normalize() Transaction {
	return Transaction{
		Base:        Base{ID: r.ID},
		Amount:      r.Amount,
		Description: r.Description,
		Category:    NormalizeCategory(r.Category),
		Date:        NormalizeDate(r.Date),
		Type:        NormalizeType(r.Type),
		Tags:        normalizeTags(r.Tags),
	}
}

// NormalizeCategory substitutes the default category for empty input.
func NormalizeCategory(category string) string {
	if category == "" {
		return DefaultCategory
	}
	return category
}

// NormalizeDate strips any time-of-day or timezone suffix and validates the
// remaining calendar date. Unparsable input yields the empty string rather
// than an error.
func NormalizeDate(date string) string {
	if i := strings.IndexAny(date, "T "); i >= 0 {
		date = date[:i]
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return ""
	}
	return date
}

// NormalizeType maps "income" to income and everything else to expense.
func NormalizeType(transactionType string) TransactionType {
	if transactionType == string(TransactionTypeIncome) {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

func normalizeTags(tags TagList) TagList {
	if tags == nil {
		return TagList{}
	}
	return tags
}
