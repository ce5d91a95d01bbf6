// Package demodata provides the fixed fallback dataset substituted at the
// presentation boundary when the data store is unreachable. Every record is
// marked as demo data so it cannot be mistaken for real rows. All functions
// are pure: no inputs, no errors possible.
package demodata

import (
	"time"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Expenses returns the fixed demo expense list.
func Expenses() []domain.Expense {
	now := time.Now().UTC()
	return []domain.Expense{
		{
			ExpenseID:    1,
			UserID:       1,
			CategoryID:   1,
			StatusID:     2,
			AmountMinor:  12000,
			Currency:     "GBP",
			ExpenseDate:  date(2024, time.January, 15),
			Description:  strPtr("Train tickets to London (DEMO DATA)"),
			UserName:     strPtr("Alice Example"),
			CategoryName: strPtr("Travel"),
			StatusName:   strPtr(domain.StatusSubmitted),
			CreatedAt:    now.AddDate(0, 0, -10),
		},
		{
			ExpenseID:    2,
			UserID:       1,
			CategoryID:   2,
			StatusID:     2,
			AmountMinor:  6900,
			Currency:     "GBP",
			ExpenseDate:  date(2024, time.January, 10),
			Description:  strPtr("Team lunch meeting (DEMO DATA)"),
			UserName:     strPtr("Alice Example"),
			CategoryName: strPtr("Meals"),
			StatusName:   strPtr(domain.StatusSubmitted),
			CreatedAt:    now.AddDate(0, 0, -15),
		},
		{
			ExpenseID:    3,
			UserID:       1,
			CategoryID:   3,
			StatusID:     3,
			AmountMinor:  9950,
			Currency:     "GBP",
			ExpenseDate:  date(2023, time.December, 4),
			Description:  strPtr("Office supplies - printer paper (DEMO DATA)"),
			UserName:     strPtr("Alice Example"),
			CategoryName: strPtr("Supplies"),
			StatusName:   strPtr(domain.StatusApproved),
			CreatedAt:    now.AddDate(0, 0, -50),
		},
		{
			ExpenseID:    4,
			UserID:       1,
			CategoryID:   1,
			StatusID:     3,
			AmountMinor:  1920,
			Currency:     "GBP",
			ExpenseDate:  date(2023, time.December, 18),
			Description:  strPtr("Uber to client site (DEMO DATA)"),
			UserName:     strPtr("Alice Example"),
			CategoryName: strPtr("Travel"),
			StatusName:   strPtr(domain.StatusApproved),
			CreatedAt:    now.AddDate(0, 0, -40),
		},
	}
}

// PendingExpenses returns the fixed demo subset awaiting review.
func PendingExpenses() []domain.Expense {
	now := time.Now().UTC()
	return []domain.Expense{
		{
			ExpenseID:    1,
			UserID:       1,
			CategoryID:   1,
			StatusID:     2,
			AmountMinor:  12000,
			Currency:     "GBP",
			ExpenseDate:  date(2024, time.January, 20),
			Description:  strPtr("Conference travel (DEMO DATA - Pending)"),
			UserName:     strPtr("Alice Example"),
			CategoryName: strPtr("Travel"),
			StatusName:   strPtr(domain.StatusSubmitted),
			CreatedAt:    now.AddDate(0, 0, -5),
		},
		{
			ExpenseID:    2,
			UserID:       1,
			CategoryID:   3,
			StatusID:     2,
			AmountMinor:  9950,
			Currency:     "GBP",
			ExpenseDate:  date(2023, time.December, 14),
			Description:  strPtr("Office equipment (DEMO DATA - Pending)"),
			UserName:     strPtr("Alice Example"),
			CategoryName: strPtr("Supplies"),
			StatusName:   strPtr(domain.StatusSubmitted),
			CreatedAt:    now.AddDate(0, 0, -10),
		},
	}
}

// Categories returns the fixed demo category list.
func Categories() []domain.ExpenseCategory {
	return []domain.ExpenseCategory{
		{CategoryID: 1, CategoryName: "Travel", IsActive: true},
		{CategoryID: 2, CategoryName: "Meals", IsActive: true},
		{CategoryID: 3, CategoryName: "Supplies", IsActive: true},
		{CategoryID: 4, CategoryName: "Accommodation", IsActive: true},
		{CategoryID: 5, CategoryName: "Other", IsActive: true},
	}
}

// Statuses returns the fixed status vocabulary.
func Statuses() []domain.ExpenseStatus {
	return []domain.ExpenseStatus{
		{StatusID: 1, StatusName: domain.StatusDraft},
		{StatusID: 2, StatusName: domain.StatusSubmitted},
		{StatusID: 3, StatusName: domain.StatusApproved},
		{StatusID: 4, StatusName: domain.StatusRejected},
	}
}

// Users returns the fixed demo user list.
func Users() []domain.User {
	return []domain.User{
		{UserID: 1, UserName: "Alice Example", Email: "alice@example.co.uk", RoleID: 1, IsActive: true, RoleName: strPtr("Employee")},
		{UserID: 2, UserName: "Bob Manager", Email: "bob.manager@example.co.uk", RoleID: 2, IsActive: true, RoleName: strPtr("Manager")},
	}
}
