// Package report computes derived reporting views over transaction lists.
// Every function is a pure pass over the records plus an injected reference
// time; nothing here touches the database or mutates its input. Sums use
// plain float addition with no rounding; rounding is a display concern.
package report

import (
	"sort"
	"time"

	"expenso/internal/models"
)

// MonthlyBucket is one month of the trailing income/expense series.
type MonthlyBucket struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DailyBucket is one day of the trailing spending series.
type DailyBucket struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// MonthSummary aggregates the current calendar month.
type MonthSummary struct {
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Net          float64 `json:"net"`
	IncomeCount  int     `json:"income_count"`
	ExpenseCount int     `json:"expense_count"`
}

// BudgetStatus reports spending against one category budget for the
// current calendar month.
type BudgetStatus struct {
	Category   string  `json:"category"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
}

// monthlyWindow and dailyWindow fix the trailing chart spans, both
// inclusive of the reference month/day.
const (
	monthlyWindow = 6
	dailyWindow   = 30
)

// MonthlySeries sums expenses and income per calendar month over the
// trailing six months ending at now, chronologically ascending. Records
// whose date does not parse fall into no bucket.
func MonthlySeries(records []models.Transaction, now time.Time) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 0, monthlyWindow)
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := monthlyWindow - 1; i >= 0; i-- {
		month := base.AddDate(0, -i, 0)
		bucket := MonthlyBucket{Month: month.Format("Jan 2006")}

		for _, record := range records {
			date, err := time.Parse(time.DateOnly, record.Date)
			if err != nil || date.Year() != month.Year() || date.Month() != month.Month() {
				continue
			}
			switch record.Type {
			case models.TransactionTypeExpense:
				bucket.Expenses += record.Amount
			case models.TransactionTypeIncome:
				bucket.Income += record.Amount
			}
		}

		buckets = append(buckets, bucket)
	}
	return buckets
}

// CategoryTotals sums expense amounts per category for the calendar month of
// now, sorted descending by total. Categories are accumulated in first-seen
// order; ties keep that order (the sort is stable).
func CategoryTotals(records []models.Transaction, now time.Time) []CategoryTotal {
	index := make(map[string]int)
	totals := []CategoryTotal{}

	for _, record := range records {
		if record.Type != models.TransactionTypeExpense {
			continue
		}
		date, err := time.Parse(time.DateOnly, record.Date)
		if err != nil || date.Year() != now.Year() || date.Month() != now.Month() {
			continue
		}
		i, ok := index[record.Category]
		if !ok {
			i = len(totals)
			index[record.Category] = i
			totals = append(totals, CategoryTotal{Category: record.Category})
		}
		totals[i].Amount += record.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})
	return totals
}

// DailySeries sums expense amounts per day over the trailing thirty days
// ending at now, chronologically ascending. Days without records are
// zero-filled, so the result always has exactly thirty entries.
func DailySeries(records []models.Transaction, now time.Time) []DailyBucket {
	buckets := make([]DailyBucket, 0, dailyWindow)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := dailyWindow - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(time.DateOnly)
		bucket := DailyBucket{Date: day}

		for _, record := range records {
			if record.Type == models.TransactionTypeExpense && record.Date == day {
				bucket.Amount += record.Amount
			}
		}

		buckets = append(buckets, bucket)
	}
	return buckets
}

// Summarize totals income and expenses for the calendar month of now.
func Summarize(records []models.Transaction, now time.Time) MonthSummary {
	var summary MonthSummary

	for _, record := range records {
		date, err := time.Parse(time.DateOnly, record.Date)
		if err != nil || date.Year() != now.Year() || date.Month() != now.Month() {
			continue
		}
		switch record.Type {
		case models.TransactionTypeExpense:
			summary.Expenses += record.Amount
			summary.ExpenseCount++
		case models.TransactionTypeIncome:
			summary.Income += record.Amount
			summary.IncomeCount++
		}
	}

	summary.Net = summary.Income - summary.Expenses
	return summary
}

// BudgetStatuses reports current-month spending against each budget, in the
// order the budgets are given. A budget's percentage is spent over limit
// times one hundred, unrounded.
func BudgetStatuses(budgets []models.Budget, records []models.Transaction, now time.Time) []BudgetStatus {
	spent := make(map[string]float64)
	for _, total := range CategoryTotals(records, now) {
		spent[total.Category] = total.Amount
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		status := BudgetStatus{
			Category: budget.Category,
			Limit:    budget.Amount,
			Spent:    spent[budget.Category],
		}
		if budget.Amount > 0 {
			status.Percentage = status.Spent / budget.Amount * 100
		}
		statuses = append(statuses, status)
	}
	return statuses
}
