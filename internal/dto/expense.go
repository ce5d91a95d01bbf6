package dto

import (
	"time"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseDateFormat is the wire format for expense dates.
const ExpenseDateFormat = "2006-01-02"

// CreateExpenseRequest defines the data needed to create a new expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate string          `json:"expenseDate" binding:"required,datetime=2006-01-02"`
	CategoryID  int             `json:"categoryId" binding:"required"`
	Description *string         `json:"description"`
	UserID      int             `json:"userId"` // defaults to the demo user when omitted
}

// UpdateExpenseStatusRequest defines a status transition request.
type UpdateExpenseStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	ReviewerID int    `json:"reviewerId"`
}

// ExpenseResponse is the wire shape of an expense, including the derived
// amount fields the UI displays.
type ExpenseResponse struct {
	ExpenseID       int        `json:"expenseId"`
	UserID          int        `json:"userId"`
	CategoryID      int        `json:"categoryId"`
	StatusID        int        `json:"statusId"`
	AmountMinor     int64      `json:"amountMinor"`
	Amount          string     `json:"amount"` // major units, two decimals
	FormattedAmount string     `json:"formattedAmount"`
	Currency        string     `json:"currency"`
	ExpenseDate     string     `json:"expenseDate"`
	Description     *string    `json:"description,omitempty"`
	ReceiptFile     *string    `json:"receiptFile,omitempty"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	ReviewedBy      *int       `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UserName        *string    `json:"userName,omitempty"`
	CategoryName    *string    `json:"categoryName,omitempty"`
	StatusName      *string    `json:"statusName,omitempty"`
	ReviewerName    *string    `json:"reviewerName,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to its wire shape.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		UserID:          e.UserID,
		CategoryID:      e.CategoryID,
		StatusID:        e.StatusID,
		AmountMinor:     e.AmountMinor,
		Amount:          e.AmountMajor().StringFixed(2),
		FormattedAmount: e.FormattedAmount(),
		Currency:        e.Currency,
		ExpenseDate:     e.ExpenseDate.Format(ExpenseDateFormat),
		Description:     e.Description,
		ReceiptFile:     e.ReceiptFile,
		SubmittedAt:     e.SubmittedAt,
		ReviewedBy:      e.ReviewedBy,
		ReviewedAt:      e.ReviewedAt,
		CreatedAt:       e.CreatedAt,
		UserName:        e.UserName,
		CategoryName:    e.CategoryName,
		StatusName:      e.StatusName,
		ReviewerName:    e.ReviewerName,
	}
}

// ToListExpenseResponse converts a slice of domain expenses to wire shapes.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(e)
	}
	return res
}
