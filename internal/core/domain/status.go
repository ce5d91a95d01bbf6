package domain

import "strings"

// ExpenseStatus is one of the fixed status vocabulary rows.
type ExpenseStatus struct {
	StatusID   int    `json:"statusId"`
	StatusName string `json:"statusName"`
}

// Canonical status names. An expense starts in Draft and is advanced only via
// an explicit status update; Approved and Rejected are terminal.
const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// ValidStatusNames lists the fixed status vocabulary in canonical casing.
var ValidStatusNames = []string{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected}

// NormalizeStatusName matches name case-insensitively against the fixed
// vocabulary and returns the canonical casing. ok is false when the name is
// not part of the vocabulary.
func NormalizeStatusName(name string) (canonical string, ok bool) {
	for _, s := range ValidStatusNames {
		if strings.EqualFold(name, s) {
			return s, true
		}
	}
	return "", false
}
