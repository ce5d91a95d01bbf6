package repositories

import (
	"context"
	"time"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses. Every method
// maps onto exactly one stored procedure call: a single attempt, fail-fast,
// no retries. Connection acquisition is scoped to the call and always
// released.
type ExpenseRepository interface {
	// FindExpenses returns expenses filtered server-side by an optional text
	// filter and an optional status name, newest first.
	FindExpenses(ctx context.Context, filter, status *string) ([]domain.Expense, error)

	// FindPendingExpenses returns expenses in non-terminal statuses awaiting
	// review, optionally text-filtered.
	FindPendingExpenses(ctx context.Context, filter *string) ([]domain.Expense, error)

	// FindExpenseByID returns a single expense, or apperrors.ErrNotFound when
	// the store was reachable but held no matching row.
	FindExpenseByID(ctx context.Context, expenseID int) (*domain.Expense, error)

	// CreateExpense persists a new expense and returns the stored row
	// including its generated identifier. A create that yields zero rows is a
	// data access failure.
	CreateExpense(ctx context.Context, userID, categoryID int, amountMinor int64, expenseDate time.Time, description *string) (*domain.Expense, error)

	// UpdateExpenseStatus sets the status of an expense and records the
	// reviewer, returning the number of rows affected.
	UpdateExpenseStatus(ctx context.Context, expenseID int, status string, reviewerID int) (int64, error)
}

// ReferenceRepository defines read operations for the reference entities the
// expense screens need.
type ReferenceRepository interface {
	FindCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	FindStatuses(ctx context.Context) ([]domain.ExpenseStatus, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
}

// RepositoryProvider bundles the repositories handed to the service container.
type RepositoryProvider struct {
	ExpenseRepo   ExpenseRepository
	ReferenceRepo ReferenceRepository
}
