package services

import (
	"testing"

	"expenso/internal/pagination"
	"expenso/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("creates_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, "Food", 15000)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected non-empty budget ID")
		}
		if budget.Category != "Food" || budget.Amount != 15000 {
			t.Errorf("unexpected budget: %+v", budget)
		}
	})

	t.Run("duplicate_category_for_same_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", 15000)

		_, err := svc.CreateBudget(user.ID, "Food", 20000)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("same_category_allowed_for_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, other.ID, "Food", 15000)

		_, err := svc.CreateBudget(user.ID, "Food", 20000)
		testutil.AssertNoError(t, err)
	})

	t.Run("empty_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "", 15000)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "Food", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("ordered_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Utilities", 5000)
		testutil.CreateTestBudget(t, db, user.ID, "Food", 15000)

		page, err := svc.GetUserBudgets(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Fatalf("expected 2 budgets, got %d", page.TotalItems)
		}
		if page.Data[0].Category != "Food" || page.Data[1].Category != "Utilities" {
			t.Errorf("expected alphabetical order, got %+v", page.Data)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("changes_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "Food", 15000)

		updated, err := svc.UpdateBudget(user.ID, budget.ID, 20000)
		testutil.AssertNoError(t, err)
		if updated.Amount != 20000 {
			t.Errorf("expected amount 20000, got %v", updated.Amount)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateBudget(user.ID, "missing", 20000)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "Food", 15000)

		_, err := svc.UpdateBudget(user.ID, budget.ID, -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("deleted_budget_is_gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "Food", 15000)

		testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

		page, err := svc.GetUserBudgets(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected no budgets, got %d", page.TotalItems)
		}
	})

	t.Run("cannot_delete_other_users_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, other.ID, "Food", 15000)

		err := svc.DeleteBudget(user.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}
