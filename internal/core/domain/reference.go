package domain

import "time"

// ExpenseCategory is a spending category an expense is booked against.
type ExpenseCategory struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	IsActive     bool   `json:"isActive"`
}

// User represents an employee or manager.
type User struct {
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	RoleID    int       `json:"roleId"`
	ManagerID *int      `json:"managerId,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	RoleName  *string   `json:"roleName,omitempty"`
}

// Role is a user role such as Employee or Manager.
type Role struct {
	RoleID      int     `json:"roleId"`
	RoleName    string  `json:"roleName"`
	Description *string `json:"description,omitempty"`
}
