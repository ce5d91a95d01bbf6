package models

import "time"

// ExpenseCategory is the row shape returned by get_categories.
type ExpenseCategory struct {
	CategoryID   int
	CategoryName string
	IsActive     bool
}

// ExpenseStatus is the row shape returned by get_statuses.
type ExpenseStatus struct {
	StatusID   int
	StatusName string
}

// User is the row shape returned by get_users, including the joined role name.
type User struct {
	UserID    int
	UserName  string
	Email     string
	RoleID    int
	ManagerID *int
	IsActive  bool
	CreatedAt time.Time
	RoleName  *string
}
