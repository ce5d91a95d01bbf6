package services

import (
	"context"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	"github.com/expensemgmt/expense_management_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data.
type ExpenseReaderSvc interface {
	// ListExpenses retrieves expenses with optional server-side text and
	// status filtering.
	ListExpenses(ctx context.Context, filter, status *string) ([]domain.Expense, error)

	// ListPendingExpenses retrieves expenses in non-terminal statuses.
	ListPendingExpenses(ctx context.Context, filter *string) ([]domain.Expense, error)

	// GetExpenseByID retrieves a single expense; apperrors.ErrNotFound when
	// absent.
	GetExpenseByID(ctx context.Context, expenseID int) (*domain.Expense, error)

	// ListCategories retrieves all expense categories.
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)

	// ListStatuses retrieves the fixed status vocabulary.
	ListStatuses(ctx context.Context) ([]domain.ExpenseStatus, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ExpenseWriterSvc defines write operations for expense data.
type ExpenseWriterSvc interface {
	// CreateExpense validates and persists a new expense, returning the
	// stored record including its generated identifier. Non-positive amounts
	// are rejected with apperrors.ErrValidation before any store interaction.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpenseStatus advances an expense through the status vocabulary.
	// Unknown status names are rejected with apperrors.ErrValidation before
	// any store interaction. Returns true iff at least one row was affected.
	UpdateExpenseStatus(ctx context.Context, expenseID int, status string, reviewerID int) (bool, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
