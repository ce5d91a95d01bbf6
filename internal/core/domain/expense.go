package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single expense claim in the domain.
//
// Owner, category, status and reviewer names are denormalised display fields
// populated by the gateway's join logic. They are read-only conveniences and
// are never written back to the store.
type Expense struct {
	ExpenseID   int        `json:"expenseId"`
	UserID      int        `json:"userId"`
	CategoryID  int        `json:"categoryId"`
	StatusID    int        `json:"statusId"`
	AmountMinor int64      `json:"amountMinor"` // smallest currency unit, e.g. pence
	Currency    string     `json:"currency"`
	ExpenseDate time.Time  `json:"expenseDate"`
	Description *string    `json:"description,omitempty"`
	ReceiptFile *string    `json:"receiptFile,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ReviewedBy  *int       `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`

	// Display fields from the gateway's joins.
	UserName     *string `json:"userName,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
	StatusName   *string `json:"statusName,omitempty"`
	ReviewerName *string `json:"reviewerName,omitempty"`
}

var oneHundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit decimal amount (e.g. 45.00) to the integer
// minor-unit count the store persists (4500). Rounding is half-up to two
// decimal places, so 0.005 of a unit rounds away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(oneHundred).Round(0).IntPart()
}

// AmountMajor returns the expense amount in major currency units.
func (e Expense) AmountMajor() decimal.Decimal {
	return decimal.NewFromInt(e.AmountMinor).Div(oneHundred)
}

// FormattedAmount renders the amount with its currency symbol and two
// decimals, e.g. "£45.00".
func (e Expense) FormattedAmount() string {
	return CurrencySymbol(e.Currency) + e.AmountMajor().StringFixed(2)
}

// CurrencySymbol maps an ISO currency code to its display symbol. Unknown
// codes fall back to the code itself followed by a space.
func CurrencySymbol(code string) string {
	switch code {
	case "GBP":
		return "£"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	default:
		return code + " "
	}
}
