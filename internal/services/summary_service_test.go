package services

import (
	"testing"

	"monedero/internal/models"
	"monedero/internal/testutil"
	"monedero/internal/timeframe"
)

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(summary.Transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(summary.Transactions))
		}
		if summary.TotalIncome != 0 || summary.TotalExpenses != 0 || summary.Balance != 0 {
			t.Errorf("expected zero totals, got income %d, expenses %d, balance %d",
				summary.TotalIncome, summary.TotalExpenses, summary.Balance)
		}
		if len(summary.ExpensesByCategory) != 0 {
			t.Errorf("expected empty breakdown, got %v", summary.ExpensesByCategory)
		}
	})

	t.Run("totals_and_breakdown_within_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		salary := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeIncome, "Salary")
		food := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Food")

		testutil.CreateTestTransaction(t, db, user.ID, salary.ID, models.TransactionTypeIncome, 10000, "2024-01-05")
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 4000, "2024-01-05")
		// Outside the requested range, must not leak into totals.
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 1000, "2024-02-01")

		rng := &timeframe.DateRange{From: "2024-01-01", To: "2024-01-31"}
		summary, err := svc.Aggregate(user.ID, rng)
		testutil.AssertNoError(t, err)

		if len(summary.Transactions) != 2 {
			t.Fatalf("expected 2 transactions in January, got %d", len(summary.Transactions))
		}
		if summary.TotalIncome != 10000 {
			t.Errorf("expected total income 10000, got %d", summary.TotalIncome)
		}
		if summary.TotalExpenses != 4000 {
			t.Errorf("expected total expenses 4000, got %d", summary.TotalExpenses)
		}
		if summary.Balance != 6000 {
			t.Errorf("expected balance 6000, got %d", summary.Balance)
		}
		if got := summary.ExpensesByCategory["Food"]; got != 4000 {
			t.Errorf("expected Food breakdown 4000, got %d", got)
		}
		if len(summary.ExpensesByCategory) != 1 {
			t.Errorf("expected single breakdown entry, got %v", summary.ExpensesByCategory)
		}
	})

	t.Run("nil_range_covers_everything", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 100, "2020-06-15")
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 200, "2024-06-15")

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(summary.Transactions) != 2 {
			t.Errorf("expected 2 transactions with no range, got %d", len(summary.Transactions))
		}
		if summary.TotalExpenses != 300 {
			t.Errorf("expected total expenses 300, got %d", summary.TotalExpenses)
		}
	})

	t.Run("income_excluded_from_breakdown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		salary := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeIncome, "Salary")

		testutil.CreateTestTransaction(t, db, user.ID, salary.ID, models.TransactionTypeIncome, 10000, "2024-01-05")

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(summary.ExpensesByCategory) != 0 {
			t.Errorf("expected no expense breakdown for income-only data, got %v", summary.ExpensesByCategory)
		}
	})

	t.Run("same_category_expenses_accumulate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Food")

		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 1250, "2024-01-05")
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 2750, "2024-01-06")

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if got := summary.ExpensesByCategory["Food"]; got != 4000 {
			t.Errorf("expected Food breakdown 4000, got %d", got)
		}
	})

	t.Run("dangling_category_becomes_uncategorized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		// No category row to resolve against.
		tx := &models.Transaction{
			UserID: user.ID,
			Type:   models.TransactionTypeExpense,
			Amount: 500,
			Date:   "2024-01-05",
		}
		if err := db.Create(tx).Error; err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(summary.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(summary.Transactions))
		}
		if summary.Transactions[0].Category.Name != "Uncategorized" {
			t.Errorf("expected Uncategorized placeholder, got %s", summary.Transactions[0].Category.Name)
		}
		if got := summary.ExpensesByCategory["Uncategorized"]; got != 500 {
			t.Errorf("expected Uncategorized breakdown 500, got %d", got)
		}
	})

	t.Run("sorted_by_date_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 100, "2024-01-10")
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 200, "2024-01-20")
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 300, "2024-01-15")

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(summary.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(summary.Transactions))
		}
		for i := 1; i < len(summary.Transactions); i++ {
			if summary.Transactions[i-1].Date < summary.Transactions[i].Date {
				t.Errorf("expected dates in descending order, got %s before %s",
					summary.Transactions[i-1].Date, summary.Transactions[i].Date)
			}
		}
	})

	t.Run("same_day_rows_keep_arrival_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		first := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 100, "2024-01-05")
		second := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 200, "2024-01-05")

		summary, err := svc.Aggregate(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(summary.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(summary.Transactions))
		}
		if summary.Transactions[0].ID != first.ID || summary.Transactions[1].ID != second.ID {
			t.Error("expected same-day rows in creation order")
		}
	})

	t.Run("user_scoped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat1 := testutil.CreateTestCategory(t, db, user1.ID, models.CategoryTypeExpense)
		cat2 := testutil.CreateTestCategory(t, db, user2.ID, models.CategoryTypeExpense)

		testutil.CreateTestTransaction(t, db, user1.ID, cat1.ID, models.TransactionTypeExpense, 100, "2024-01-05")
		testutil.CreateTestTransaction(t, db, user2.ID, cat2.ID, models.TransactionTypeExpense, 900, "2024-01-05")

		summary, err := svc.Aggregate(user1.ID, nil)
		testutil.AssertNoError(t, err)

		if summary.TotalExpenses != 100 {
			t.Errorf("expected only user1's expenses, got %d", summary.TotalExpenses)
		}
	})
}
