package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensemgmt/expense_management_app/internal/apperrors"
	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	portsrepo "github.com/expensemgmt/expense_management_app/internal/core/ports/repositories"
	"github.com/expensemgmt/expense_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository executes the expense stored procedures. Each method is
// a single parameterised call: one scoped connection acquisition from the
// pool, no retries, fail-fast with apperrors.ErrDataAccess.
type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

// NewPgxExpenseRepository creates a new expense repository over the pool.
func NewPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// dataAccessErr tags err as a data access failure so the boundary can match
// it with errors.Is(err, apperrors.ErrDataAccess).
func dataAccessErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDataAccess, err)
}

// expenseColumns is the column list every expense stored procedure returns.
const expenseColumns = `expense_id, user_id, category_id, status_id, amount_minor, currency,
	expense_date, description, receipt_file, submitted_at, reviewed_by, reviewed_at, created_at,
	user_name, category_name, status_name, reviewer_name`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.CategoryID,
		&m.StatusID,
		&m.AmountMinor,
		&m.Currency,
		&m.ExpenseDate,
		&m.Description,
		&m.ReceiptFile,
		&m.SubmittedAt,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.UserName,
		&m.CategoryName,
		&m.StatusName,
		&m.ReviewerName,
	)
	return m, err
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		UserID:       m.UserID,
		CategoryID:   m.CategoryID,
		StatusID:     m.StatusID,
		AmountMinor:  m.AmountMinor,
		Currency:     m.Currency,
		ExpenseDate:  m.ExpenseDate,
		Description:  m.Description,
		ReceiptFile:  m.ReceiptFile,
		SubmittedAt:  m.SubmittedAt,
		ReviewedBy:   m.ReviewedBy,
		ReviewedAt:   m.ReviewedAt,
		CreatedAt:    m.CreatedAt,
		UserName:     m.UserName,
		CategoryName: m.CategoryName,
		StatusName:   m.StatusName,
		ReviewerName: m.ReviewerName,
	}
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, op, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dataAccessErr(op, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, dataAccessErr(op+": scan row", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, dataAccessErr(op+": iterate rows", rows.Err())
	}
	return expenses, nil
}

// FindExpenses calls get_expenses(filter, status).
func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, filter, status *string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM get_expenses($1, $2);`
	return r.queryExpenses(ctx, "get expenses", query, filter, status)
}

// FindPendingExpenses calls get_pending_expenses(filter).
func (r *PgxExpenseRepository) FindPendingExpenses(ctx context.Context, filter *string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM get_pending_expenses($1);`
	return r.queryExpenses(ctx, "get pending expenses", query, filter)
}

// FindExpenseByID calls get_expense_by_id(expense_id). A store that answers
// with zero rows yields apperrors.ErrNotFound, not a data access failure.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM get_expense_by_id($1);`
	m, err := scanExpense(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, dataAccessErr(fmt.Sprintf("get expense by id %d", expenseID), err)
	}
	expense := toDomainExpense(m)
	return &expense, nil
}

// CreateExpense calls create_expense and returns the persisted row, including
// the generated identifier. A create returning zero rows is a data access
// failure, never a not-found.
func (r *PgxExpenseRepository) CreateExpense(ctx context.Context, userID, categoryID int, amountMinor int64, expenseDate time.Time, description *string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM create_expense($1, $2, $3, $4, $5);`
	m, err := scanExpense(r.db.QueryRow(ctx, query, userID, categoryID, amountMinor, expenseDate, description))
	if err != nil {
		return nil, dataAccessErr("create expense", err)
	}
	expense := toDomainExpense(m)
	return &expense, nil
}

// UpdateExpenseStatus calls update_expense_status, which returns the number
// of rows it touched.
func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID int, status string, reviewerID int) (int64, error) {
	query := `SELECT update_expense_status($1, $2, $3);`
	var affected int64
	if err := r.db.QueryRow(ctx, query, expenseID, status, reviewerID).Scan(&affected); err != nil {
		return 0, dataAccessErr(fmt.Sprintf("update status of expense %d", expenseID), err)
	}
	return affected, nil
}
