package models

import "time"

// Expense is the row shape returned by the expense stored procedures,
// including the denormalised display columns from their joins.
type Expense struct {
	ExpenseID    int
	UserID       int
	CategoryID   int
	StatusID     int
	AmountMinor  int64
	Currency     string
	ExpenseDate  time.Time
	Description  *string
	ReceiptFile  *string
	SubmittedAt  *time.Time
	ReviewedBy   *int
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UserName     *string
	CategoryName *string
	StatusName   *string
	ReviewerName *string
}
