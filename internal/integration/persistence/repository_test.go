package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/application/usecase/dashboard"
	"github.com/spendlens/backend/internal/domain/entity"
	"github.com/spendlens/backend/internal/integration/persistence/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := entity.NewUser("tester", uuid.NewString()+"@example.com", "", "hash")
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}

func seedTransaction(
	t *testing.T,
	db *gorm.DB,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	amount int64,
	txType entity.TransactionType,
	date time.Time,
	note string,
) {
	t.Helper()
	tx := entity.NewTransaction(accountID, categoryID, decimal.NewFromInt(amount), txType, date, note)
	if err := db.Create(model.TransactionFromEntity(tx)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}

func TestCategoryRepository_GetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, userID, "Groceries", entity.CategoryTypeExpense)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	// Second call with a different fallback type must return the same row
	// with its original type untouched.
	second, err := repo.GetOrCreate(ctx, userID, "Groceries", entity.CategoryTypeIncome)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same category id, got %s and %s", first.ID, second.ID)
	}
	if second.Type != entity.CategoryTypeExpense {
		t.Errorf("expected existing type to be preserved, got %s", second.Type)
	}

	var count int64
	db.Model(&model.CategoryModel{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one category row, got %d", count)
	}

	// Names are case-sensitive, so a different casing is a new category.
	other, err := repo.GetOrCreate(ctx, userID, "groceries", entity.CategoryTypeExpense)
	if err != nil {
		t.Fatalf("case-variant call failed: %v", err)
	}
	if other.ID == first.ID {
		t.Error("expected a distinct category for different casing")
	}

	// Same name under another user is independent.
	otherUser := seedUser(t, db)
	theirs, err := repo.GetOrCreate(ctx, otherUser, "Groceries", entity.CategoryTypeExpense)
	if err != nil {
		t.Fatalf("other user call failed: %v", err)
	}
	if theirs.ID == first.ID {
		t.Error("expected per-user category isolation")
	}
}

func TestAccountRepository_FindDefaultOrCreate(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	first, err := repo.FindDefaultOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if first.Name != entity.DefaultAccountName {
		t.Errorf("expected default account name, got %q", first.Name)
	}
	if first.Type != entity.AccountTypeCash {
		t.Errorf("expected cash account, got %s", first.Type)
	}

	second, err := repo.FindDefaultOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same account, got %s and %s", first.ID, second.ID)
	}

	var count int64
	db.Model(&model.AccountModel{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one account row, got %d", count)
	}
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	ctx := context.Background()

	account, err := NewAccountRepository(db).FindDefaultOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	groceries, err := NewCategoryRepository(db).GetOrCreate(ctx, userID, "Groceries", entity.CategoryTypeExpense)
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	salary, err := NewCategoryRepository(db).GetOrCreate(ctx, userID, "Salary", entity.CategoryTypeIncome)
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	seedTransaction(t, db, account.ID, &groceries.ID, 80, entity.TransactionTypeExpense, march, "weekly shop")
	seedTransaction(t, db, account.ID, &salary.ID, 3000, entity.TransactionTypeIncome, march.AddDate(0, 0, 1), "march pay")
	seedTransaction(t, db, account.ID, nil, 15, entity.TransactionTypeExpense, march.AddDate(0, 0, 2), "street food")

	repo := NewTransactionRepository(db)

	t.Run("unfiltered returns all newest first", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		if !rows[0].Date.After(rows[2].Date) {
			t.Error("expected newest-first ordering")
		}
	})

	t.Run("filter by type", func(t *testing.T) {
		income := entity.TransactionTypeIncome
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, Type: &income})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 income row, got %d", len(rows))
		}
		if rows[0].Category == nil || *rows[0].Category != "Salary" {
			t.Errorf("expected Salary category, got %v", rows[0].Category)
		}
	})

	t.Run("filter by category name", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, Category: "Groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	})

	t.Run("search matches note case-insensitively", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, Search: "WEEKLY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	})

	t.Run("sort by amount", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID: userID,
			SortBy: adapter.TransactionSortAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		if !rows[0].Amount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected largest amount first, got %s", rows[0].Amount)
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: seedUser(t, db)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows for another user, got %d", len(rows))
		}
	})
}

func TestDashboardRepository_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	ctx := context.Background()

	account, _ := NewAccountRepository(db).FindDefaultOrCreate(ctx, userID)
	catRepo := NewCategoryRepository(db)
	food, _ := catRepo.GetOrCreate(ctx, userID, "Food", entity.CategoryTypeExpense)
	rent, _ := catRepo.GetOrCreate(ctx, userID, "Rent", entity.CategoryTypeExpense)
	fun, _ := catRepo.GetOrCreate(ctx, userID, "Fun", entity.CategoryTypeExpense)
	salary, _ := catRepo.GetOrCreate(ctx, userID, "Salary", entity.CategoryTypeIncome)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	mid := start.AddDate(0, 0, 14)

	seedTransaction(t, db, account.ID, &salary.ID, 3000, entity.TransactionTypeIncome, mid, "pay")
	seedTransaction(t, db, account.ID, &food.ID, 30, entity.TransactionTypeExpense, mid, "")
	seedTransaction(t, db, account.ID, &rent.ID, 50, entity.TransactionTypeExpense, mid, "")
	seedTransaction(t, db, account.ID, &fun.ID, 10, entity.TransactionTypeExpense, mid, "")
	// Boundary rows: end is exclusive, start is inclusive.
	seedTransaction(t, db, account.ID, &food.ID, 999, entity.TransactionTypeExpense, end, "next month")
	seedTransaction(t, db, account.ID, &food.ID, 5, entity.TransactionTypeExpense, start, "first day")

	repo := NewDashboardRepository(db)

	t.Run("month summary", func(t *testing.T) {
		summary, err := repo.GetMonthSummary(ctx, userID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.TotalIncome.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected income 3000, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpenses.Equal(decimal.NewFromInt(95)) {
			t.Errorf("expected expenses 95, got %s", summary.TotalExpenses)
		}
		if summary.TransactionCount != 5 {
			t.Errorf("expected 5 transactions in window, got %d", summary.TransactionCount)
		}
	})

	t.Run("empty window is zero not null", func(t *testing.T) {
		summary, err := repo.GetMonthSummary(ctx, userID, start.AddDate(-1, 0, 0), end.AddDate(-1, 0, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() || summary.TransactionCount != 0 {
			t.Errorf("expected all-zero summary, got %+v", summary)
		}
	})

	t.Run("top categories ordered by total", func(t *testing.T) {
		top, err := repo.GetTopCategories(ctx, userID, start, end, dashboard.TopCategoriesLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(top))
		}
		if top[0].Name != "Rent" || top[1].Name != "Food" || top[2].Name != "Fun" {
			t.Errorf("unexpected order: %s, %s, %s", top[0].Name, top[1].Name, top[2].Name)
		}
		if !top[1].Total.Equal(decimal.NewFromInt(35)) {
			t.Errorf("expected Food total 35, got %s", top[1].Total)
		}
	})

	t.Run("top categories respects limit", func(t *testing.T) {
		top, err := repo.GetTopCategories(ctx, userID, start, end, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 2 {
			t.Errorf("expected 2 categories, got %d", len(top))
		}
	})

	t.Run("expense total excludes uncategorized", func(t *testing.T) {
		seedTransaction(t, db, account.ID, nil, 1000, entity.TransactionTypeExpense, mid, "no category")
		total, err := repo.GetExpenseTotal(ctx, userID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.NewFromInt(95)) {
			t.Errorf("expected categorized expense total 95, got %s", total)
		}
	})
}

func TestDashboardRepository_GetBudgetTotal(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	ctx := context.Background()

	food, _ := NewCategoryRepository(db).GetOrCreate(ctx, userID, "Food", entity.CategoryTypeExpense)
	budgetRepo := NewBudgetRepository(db)

	marchStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	marchEnd := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	mustCreateBudget := func(limit int64, start, end time.Time) {
		t.Helper()
		b := entity.NewBudget(userID, food.ID, decimal.NewFromInt(limit), start, end)
		if err := budgetRepo.Create(ctx, b); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
	}

	mustCreateBudget(200, marchStart, marchEnd)
	mustCreateBudget(300, marchStart, marchEnd)
	mustCreateBudget(500, april, april.AddDate(0, 1, -1))

	repo := NewDashboardRepository(db)

	total, err := repo.GetBudgetTotal(ctx, userID, marchStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected budgets containing march 1 to total 500, got %s", total)
	}

	// End date is inclusive.
	total, err = repo.GetBudgetTotal(ctx, userID, marchEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected end date to be contained, got %s", total)
	}

	total, err = repo.GetBudgetTotal(ctx, userID, april)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected only the april budget, got %s", total)
	}
}

func TestBudgetRepository_FindByUserWithSpent(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	ctx := context.Background()

	account, _ := NewAccountRepository(db).FindDefaultOrCreate(ctx, userID)
	food, _ := NewCategoryRepository(db).GetOrCreate(ctx, userID, "Food", entity.CategoryTypeExpense)
	rent, _ := NewCategoryRepository(db).GetOrCreate(ctx, userID, "Rent", entity.CategoryTypeExpense)

	budgetRepo := NewBudgetRepository(db)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	foodBudget := entity.NewBudget(userID, food.ID, decimal.NewFromInt(200), start, end)
	if err := budgetRepo.Create(ctx, foodBudget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}
	rentBudget := entity.NewBudget(userID, rent.ID, decimal.NewFromInt(1000), start, end)
	if err := budgetRepo.Create(ctx, rentBudget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	mid := start.AddDate(0, 0, 10)
	seedTransaction(t, db, account.ID, &food.ID, 60, entity.TransactionTypeExpense, mid, "")
	seedTransaction(t, db, account.ID, &food.ID, 40, entity.TransactionTypeExpense, end, "last day counts")
	seedTransaction(t, db, account.ID, &food.ID, 500, entity.TransactionTypeExpense, end.AddDate(0, 0, 1), "april")
	seedTransaction(t, db, account.ID, &food.ID, 25, entity.TransactionTypeIncome, mid, "refund, not spend")

	budgets, err := budgetRepo.FindByUserWithSpent(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(budgets))
	}

	var foodRow *entity.BudgetWithCategory
	for _, b := range budgets {
		if b.CategoryName == "Food" {
			foodRow = b
		}
	}
	if foodRow == nil {
		t.Fatal("expected a Food budget row")
	}
	if !foodRow.Spent.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected spent 100 inside the inclusive period, got %s", foodRow.Spent)
	}
	if foodRow.CategoryType != entity.CategoryTypeExpense {
		t.Errorf("expected expense category type, got %s", foodRow.CategoryType)
	}
}

func TestReportRepository_GetWindowRows(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	ctx := context.Background()

	account, _ := NewAccountRepository(db).FindDefaultOrCreate(ctx, userID)
	food, _ := NewCategoryRepository(db).GetOrCreate(ctx, userID, "Food", entity.CategoryTypeExpense)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	seedTransaction(t, db, account.ID, &food.ID, 10, entity.TransactionTypeExpense, start.AddDate(0, 0, 5), "in window")
	seedTransaction(t, db, account.ID, nil, 20, entity.TransactionTypeExpense, start.AddDate(0, 0, 2), "uncategorized")
	seedTransaction(t, db, account.ID, &food.ID, 30, entity.TransactionTypeExpense, end, "outside")

	repo := NewReportRepository(db)
	rows, err := repo.GetWindowRows(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 in-window rows, got %d", len(rows))
	}
	if !rows[0].Date.Before(rows[1].Date) {
		t.Error("expected oldest-first ordering")
	}
	if rows[0].CategoryName != nil {
		t.Errorf("expected nil category for uncategorized row, got %v", *rows[0].CategoryName)
	}
	if rows[1].CategoryName == nil || *rows[1].CategoryName != "Food" {
		t.Errorf("expected Food category, got %v", rows[1].CategoryName)
	}
}
