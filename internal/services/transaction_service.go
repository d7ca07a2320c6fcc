package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "expenso/internal/errors"
	"expenso/internal/filter"
	"expenso/internal/models"
	"expenso/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// validateInput enforces the creation invariants on caller-supplied fields.
func validateInput(input TransactionInput) error {
	if input.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if input.Description == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if input.Type != models.TransactionTypeExpense && input.Type != models.TransactionTypeIncome {
		return apperrors.ErrInvalidTransactionType
	}
	return nil
}

// fromInput builds a normalized transaction record from validated input.
func fromInput(userID string, input TransactionInput) models.Transaction {
	tags := input.Tags
	if tags == nil {
		tags = models.TagList{}
	}
	return models.Transaction{
		UserID:      userID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    models.NormalizeCategory(input.Category),
		Date:        models.NormalizeDate(input.Date),
		Tags:        tags,
	}
}

// CreateTransaction records a new expense or income for the user.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	transaction := fromInput(userID, input)
	if err := s.db.Create(&transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// fetchAll loads the user's full record list, most recent first. Filtering
// and aggregation are in-memory passes over this list.
func (s *transactionService) fetchAll(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetUserTransactions returns the page of records matching the filter spec,
// newest first. The filter is evaluated in memory so that lenient bound
// parsing behaves identically everywhere it is used.
func (s *transactionService) GetUserTransactions(userID string, spec filter.Spec, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	matched, err := s.GetFilteredTransactions(userID, spec)
	if err != nil {
		return nil, err
	}

	result := pagination.PageSlice(matched, page)
	return &result, nil
}

// GetFilteredTransactions returns the full filtered record list in
// most-recent-first order, without pagination. The CSV export uses this.
func (s *transactionService) GetFilteredTransactions(userID string, spec filter.Spec) ([]models.Transaction, error) {
	transactions, err := s.fetchAll(userID)
	if err != nil {
		return nil, err
	}
	return filter.Apply(transactions, spec), nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ReplaceTransaction overwrites every caller-editable field of an existing
// record. Records are never partially updated in place.
func (s *transactionService) ReplaceTransaction(userID, transactionID string, input TransactionInput) (*models.Transaction, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	replacement := fromInput(userID, input)
	replacement.Base = existing.Base

	if err := s.db.Save(&replacement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &replacement, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ImportTransactions ingests loosely-shaped records from an external store.
// Each record is normalized before it is written; malformed fields degrade
// to safe defaults rather than rejecting the batch. Returns the number of
// records stored.
func (s *transactionService) ImportTransactions(userID string, raw []models.RawTransaction) (int, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	transactions := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		transaction := r.Normalize()
		// Imported IDs come from a different store; assign fresh ones.
		transaction.ID = ""
		transaction.UserID = userID
		transactions = append(transactions, transaction)
	}

	if err := s.db.Create(&transactions).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(transactions), nil
}

// GetFacets collects the distinct categories and tags across the user's
// records, ordered by first appearance in the most-recent-first list.
func (s *transactionService) GetFacets(userID string) (*Facets, error) {
	transactions, err := s.fetchAll(userID)
	if err != nil {
		return nil, err
	}

	facets := &Facets{Categories: []string{}, Tags: []string{}}
	seenCategory := make(map[string]bool)
	seenTag := make(map[string]bool)

	for _, transaction := range transactions {
		if !seenCategory[transaction.Category] {
			seenCategory[transaction.Category] = true
			facets.Categories = append(facets.Categories, transaction.Category)
		}
		for _, tag := range transaction.Tags {
			if !seenTag[tag] {
				seenTag[tag] = true
				facets.Tags = append(facets.Tags, tag)
			}
		}
	}
	return facets, nil
}
