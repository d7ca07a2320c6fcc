package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/report"
)

// analyticsService computes derived reporting views. It loads the user's
// record list and hands it to the pure functions in the report package;
// the reference time is injected by the caller for testability.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

func (s *analyticsService) loadTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// MonthlySeries returns income and expense totals for the trailing six
// calendar months ending at now.
func (s *analyticsService) MonthlySeries(userID string, now time.Time) ([]report.MonthlyBucket, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.MonthlySeries(transactions, now), nil
}

// CategoryTotals returns expense totals per category for the calendar
// month of now, largest first.
func (s *analyticsService) CategoryTotals(userID string, now time.Time) ([]report.CategoryTotal, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.CategoryTotals(transactions, now), nil
}

// DailySeries returns expense totals for the trailing thirty days ending
// at now, zero-filled.
func (s *analyticsService) DailySeries(userID string, now time.Time) ([]report.DailyBucket, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.DailySeries(transactions, now), nil
}

// Summary returns income, expense, and net totals for the calendar month
// of now.
func (s *analyticsService) Summary(userID string, now time.Time) (*report.MonthSummary, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	summary := report.Summarize(transactions, now)
	return &summary, nil
}

// BudgetStatuses reports current-month spending against each of the user's
// budgets.
func (s *analyticsService) BudgetStatuses(userID string, now time.Time) ([]report.BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.BudgetStatuses(budgets, transactions, now), nil
}
