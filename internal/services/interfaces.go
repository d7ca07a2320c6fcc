package services

import (
	"time"

	"expenso/internal/filter"
	"expenso/internal/models"
	"expenso/internal/pagination"
	"expenso/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionInput carries the caller-supplied fields of a transaction.
// On edit the whole record is replaced with these fields; partial in-place
// updates are deliberately not supported.
type TransactionInput struct {
	Type        models.TransactionType
	Amount      float64
	Description string
	Category    string
	Date        string
	Tags        models.TagList
}

// Facets lists the distinct categories and tags present in a user's
// records, in most-recent-first order of appearance.
type Facets struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, spec filter.Spec, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetFilteredTransactions(userID string, spec filter.Spec) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	ReplaceTransaction(userID, transactionID string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	ImportTransactions(userID string, raw []models.RawTransaction) (int, error)
	GetFacets(userID string) (*Facets, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, category string, amount float64) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	UpdateBudget(userID, budgetID string, amount float64) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// AnalyticsServicer defines the contract for derived reporting views.
// Every method takes the reference time the trailing windows end at.
type AnalyticsServicer interface {
	MonthlySeries(userID string, now time.Time) ([]report.MonthlyBucket, error)
	CategoryTotals(userID string, now time.Time) ([]report.CategoryTotal, error)
	DailySeries(userID string, now time.Time) ([]report.DailyBucket, error)
	Summary(userID string, now time.Time) (*report.MonthSummary, error)
	BudgetStatuses(userID string, now time.Time) ([]report.BudgetStatus, error)
}
