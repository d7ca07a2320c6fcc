package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expenso/internal/services"
)

// AnalyticsHandler serves the derived reporting views that feed the
// dashboard stat tiles and charts.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetMonthlySeries returns the trailing six-month income/expense series
// @Summary     Monthly income vs expenses
// @Description Income and expense totals per calendar month for the trailing six months, ascending
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       at query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success     200 {array} report.MonthlyBucket "Monthly series"
// @Failure     400 {object} ErrorResponse "Invalid reference date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/monthly [get]
func (h *AnalyticsHandler) GetMonthlySeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now, err := referenceTime(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.analyticsService.MonthlySeries(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly": series})
}

// GetCategoryTotals returns current-month expense totals by category
// @Summary     Category breakdown
// @Description Expense totals per category for the current month, largest first
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       at query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success     200 {array} report.CategoryTotal "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid reference date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now, err := referenceTime(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.CategoryTotals(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": totals})
}

// GetDailySeries returns the trailing thirty-day spending series
// @Summary     Daily spending
// @Description Expense totals per day for the trailing thirty days, zero-filled, ascending
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       at query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success     200 {array} report.DailyBucket "Daily series"
// @Failure     400 {object} ErrorResponse "Invalid reference date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/daily [get]
func (h *AnalyticsHandler) GetDailySeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now, err := referenceTime(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.analyticsService.DailySeries(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": series})
}

// GetSummary returns current-month income, expense, and net totals
// @Summary     Month summary
// @Description Income, expense, and net totals plus transaction counts for the current month
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       at query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success     200 {object} report.MonthSummary "Month summary"
// @Failure     400 {object} ErrorResponse "Invalid reference date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now, err := referenceTime(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.Summary(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetBudgetStatuses returns spending against each budget for the current month
// @Summary     Budget progress
// @Description Current-month spending against each category budget
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       at query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success     200 {array} report.BudgetStatus "Budget statuses"
// @Failure     400 {object} ErrorResponse "Invalid reference date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/budgets [get]
func (h *AnalyticsHandler) GetBudgetStatuses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now, err := referenceTime(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	statuses, err := h.analyticsService.BudgetStatuses(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": statuses})
}
