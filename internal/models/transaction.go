package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single expense or income record.
// Date carries no time component and is stored and compared as YYYY-MM-DD.
// Amount is a unit-less positive magnitude; the currency is implied by the UI.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;index;not null" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Date        string          `gorm:"size:10;index" json:"date"`
	Tags        TagList         `gorm:"type:text" json:"tags"`
}
