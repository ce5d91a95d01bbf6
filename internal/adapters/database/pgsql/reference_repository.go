package pgsql

import (
	"context"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	portsrepo "github.com/expensemgmt/expense_management_app/internal/core/ports/repositories"
	"github.com/expensemgmt/expense_management_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository reads the category, status and user reference data
// through their stored procedures.
type PgxReferenceRepository struct {
	db *pgxpool.Pool
}

// NewPgxReferenceRepository creates a new reference repository over the pool.
func NewPgxReferenceRepository(db *pgxpool.Pool) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{db: db}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

// FindCategories calls get_categories().
func (r *PgxReferenceRepository) FindCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	query := `SELECT category_id, category_name, is_active FROM get_categories();`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, dataAccessErr("get categories", err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var m models.ExpenseCategory
		if err := rows.Scan(&m.CategoryID, &m.CategoryName, &m.IsActive); err != nil {
			return nil, dataAccessErr("get categories: scan row", err)
		}
		categories = append(categories, domain.ExpenseCategory{
			CategoryID:   m.CategoryID,
			CategoryName: m.CategoryName,
			IsActive:     m.IsActive,
		})
	}
	if rows.Err() != nil {
		return nil, dataAccessErr("get categories: iterate rows", rows.Err())
	}
	return categories, nil
}

// FindStatuses calls get_statuses().
func (r *PgxReferenceRepository) FindStatuses(ctx context.Context) ([]domain.ExpenseStatus, error) {
	query := `SELECT status_id, status_name FROM get_statuses();`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, dataAccessErr("get statuses", err)
	}
	defer rows.Close()

	statuses := []domain.ExpenseStatus{}
	for rows.Next() {
		var m models.ExpenseStatus
		if err := rows.Scan(&m.StatusID, &m.StatusName); err != nil {
			return nil, dataAccessErr("get statuses: scan row", err)
		}
		statuses = append(statuses, domain.ExpenseStatus{StatusID: m.StatusID, StatusName: m.StatusName})
	}
	if rows.Err() != nil {
		return nil, dataAccessErr("get statuses: iterate rows", rows.Err())
	}
	return statuses, nil
}

// FindUsers calls get_users().
func (r *PgxReferenceRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT user_id, user_name, email, role_id, manager_id, is_active, created_at, role_name FROM get_users();`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, dataAccessErr("get users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var m models.User
		if err := rows.Scan(&m.UserID, &m.UserName, &m.Email, &m.RoleID, &m.ManagerID, &m.IsActive, &m.CreatedAt, &m.RoleName); err != nil {
			return nil, dataAccessErr("get users: scan row", err)
		}
		users = append(users, domain.User{
			UserID:    m.UserID,
			UserName:  m.UserName,
			Email:     m.Email,
			RoleID:    m.RoleID,
			ManagerID: m.ManagerID,
			IsActive:  m.IsActive,
			CreatedAt: m.CreatedAt,
			RoleName:  m.RoleName,
		})
	}
	if rows.Err() != nil {
		return nil, dataAccessErr("get users: iterate rows", rows.Err())
	}
	return users, nil
}
