package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// StudentSortFields contains allowed sort fields for students
var StudentSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"phone":            true,
	"branch_id":        true,
	"membership_start": true,
	"membership_end":   true,
	"active":           true,
}

// SeatSortFields contains allowed sort fields for seats
var SeatSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"seat_number": true,
	"branch_id":   true,
}

// ShiftSortFields contains allowed sort fields for shifts
var ShiftSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"event_date": true,
}

// BranchSortFields contains allowed sort fields for branches
var BranchSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"code":       true,
}

// CollectionRecordSortFields contains allowed sort fields for collection records
var CollectionRecordSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"receipt_number": true,
	"student_id":     true,
	"branch_id":      true,
	"total_fee":      true,
	"accrual_month":  true,
	"payment_date":   true,
	"status":         true,
}

// PreviousDuePaidSortFields contains allowed sort fields for previous-due payments
var PreviousDuePaidSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"paid_on":        true,
	"paid_month":     true,
	"original_month": true,
	"amount":         true,
}

// AdvancePaymentSortFields contains allowed sort fields for advance payments
var AdvancePaymentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"student_id": true,
	"paid_on":    true,
	"amount":     true,
}

// ExpenseSortFields contains allowed sort fields for expenses
var ExpenseSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"expense_number": true,
	"title":          true,
	"category":       true,
	"incurred_on":    true,
	"incurred_month": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"username":      true,
	"email":         true,
	"display_name":  true,
	"status":        true,
	"last_login_at": true,
}
