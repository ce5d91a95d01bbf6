package dto

import (
	"time"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
)

// CategoryResponse is the wire shape of an expense category.
type CategoryResponse struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	IsActive     bool   `json:"isActive"`
}

// StatusResponse is the wire shape of an expense status.
type StatusResponse struct {
	StatusID   int    `json:"statusId"`
	StatusName string `json:"statusName"`
}

// UserResponse is the wire shape of a user.
type UserResponse struct {
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	RoleID    int       `json:"roleId"`
	ManagerID *int      `json:"managerId,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	RoleName  *string   `json:"roleName,omitempty"`
}

// ToListCategoryResponse converts domain categories to wire shapes.
func ToListCategoryResponse(categories []domain.ExpenseCategory) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = CategoryResponse{CategoryID: cat.CategoryID, CategoryName: cat.CategoryName, IsActive: cat.IsActive}
	}
	return res
}

// ToListStatusResponse converts domain statuses to wire shapes.
func ToListStatusResponse(statuses []domain.ExpenseStatus) []StatusResponse {
	res := make([]StatusResponse, len(statuses))
	for i, st := range statuses {
		res[i] = StatusResponse{StatusID: st.StatusID, StatusName: st.StatusName}
	}
	return res
}

// ToListUserResponse converts domain users to wire shapes.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = UserResponse{
			UserID:    u.UserID,
			UserName:  u.UserName,
			Email:     u.Email,
			RoleID:    u.RoleID,
			ManagerID: u.ManagerID,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			RoleName:  u.RoleName,
		}
	}
	return res
}
