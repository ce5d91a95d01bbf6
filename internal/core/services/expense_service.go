package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/expensemgmt/expense_management_app/internal/apperrors"
	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	portsrepo "github.com/expensemgmt/expense_management_app/internal/core/ports/repositories"
	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/dto"
)

// ExpenseService orchestrates the expense gateway. It is stateless per call
// and never substitutes demo data itself: gateway failures propagate so the
// presentation layer can decide whether to degrade.
type ExpenseService struct {
	expenseRepo   portsrepo.ExpenseRepository
	referenceRepo portsrepo.ReferenceRepository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, referenceRepo portsrepo.ReferenceRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:   expenseRepo,
		referenceRepo: referenceRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// ListExpenses retrieves expenses, filtered server-side by the gateway.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter, status *string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, filter, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// ListPendingExpenses retrieves expenses awaiting review.
func (s *ExpenseService) ListPendingExpenses(ctx context.Context, filter *string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindPendingExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// GetExpenseByID retrieves a single expense by its identifier.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID int) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// CreateExpense validates the request and persists a new expense in Draft.
// The caller-supplied decimal amount is converted to integer minor units via
// round(amount * 100) before it reaches the store.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrValidation)
	}

	expenseDate, err := time.Parse(dto.ExpenseDateFormat, req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expenseDate must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	amountMinor := domain.MinorUnits(req.Amount)

	expense, err := s.expenseRepo.CreateExpense(ctx, req.UserID, req.CategoryID, amountMinor, expenseDate, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// UpdateExpenseStatus validates the status name against the fixed vocabulary
// (case-insensitively) and persists the canonical casing. Returns true iff at
// least one row was affected.
func (s *ExpenseService) UpdateExpenseStatus(ctx context.Context, expenseID int, status string, reviewerID int) (bool, error) {
	canonical, ok := domain.NormalizeStatusName(status)
	if !ok {
		return false, fmt.Errorf("%w: invalid status, must be one of: %s",
			apperrors.ErrValidation, strings.Join(domain.ValidStatusNames, ", "))
	}

	rows, err := s.expenseRepo.UpdateExpenseStatus(ctx, expenseID, canonical, reviewerID)
	if err != nil {
		return false, fmt.Errorf("failed to update expense status: %w", err)
	}
	return rows > 0, nil
}

// ListCategories retrieves all expense categories.
func (s *ExpenseService) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	categories, err := s.referenceRepo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.ExpenseCategory{}, nil
	}
	return categories, nil
}

// ListStatuses retrieves the fixed status vocabulary from the store.
func (s *ExpenseService) ListStatuses(ctx context.Context) ([]domain.ExpenseStatus, error) {
	statuses, err := s.referenceRepo.FindStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	if statuses == nil {
		return []domain.ExpenseStatus{}, nil
	}
	return statuses, nil
}

// ListUsers retrieves all users.
func (s *ExpenseService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.referenceRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}
