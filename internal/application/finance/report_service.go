package finance

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// ReportService assembles monthly financial reports and the unified
// transaction feed from the finance repositories. The reconciliation
// math itself lives in the domain reporting service.
type ReportService struct {
	collectionRepo  finance.CollectionRecordRepository
	previousDueRepo finance.PreviousDuePaidRepository
	advanceRepo     finance.AdvancePaymentRepository
	expenseRepo     finance.ExpenseRepository
	reporting       *finance.ReportingService
}

// NewReportService creates a new ReportService
func NewReportService(
	collectionRepo finance.CollectionRecordRepository,
	previousDueRepo finance.PreviousDuePaidRepository,
	advanceRepo finance.AdvancePaymentRepository,
	expenseRepo finance.ExpenseRepository,
) *ReportService {
	return &ReportService{
		collectionRepo:  collectionRepo,
		previousDueRepo: previousDueRepo,
		advanceRepo:     advanceRepo,
		expenseRepo:     expenseRepo,
		reporting:       finance.NewReportingService(),
	}
}

// MonthlyReportResponse is the profit/loss view of one month
type MonthlyReportResponse struct {
	Month                string            `json:"month"`
	TotalCollected       valueobject.Money `json:"total_collected"`
	TotalCash            valueobject.Money `json:"total_cash"`
	TotalOnline          valueobject.Money `json:"total_online"`
	TotalDue             valueobject.Money `json:"total_due"`
	PreviousDueCollected valueobject.Money `json:"previous_due_collected"`
	TotalExpenses        valueobject.Money `json:"total_expenses"`
	NetProfit            valueobject.Money `json:"net_profit"`
	RecordCount          int               `json:"record_count"`
}

// TransactionKind identifies a row in the unified transaction feed
type TransactionKind string

const (
	TransactionKindCollection  TransactionKind = "COLLECTION"
	TransactionKindPreviousDue TransactionKind = "PREVIOUS_DUE"
	TransactionKindAdvance     TransactionKind = "ADVANCE"
	TransactionKindExpense     TransactionKind = "EXPENSE"
)

// TransactionResponse is one row of the unified money-movement feed
type TransactionResponse struct {
	ID        uuid.UUID         `json:"id"`
	Kind      TransactionKind   `json:"kind"`
	Reference string            `json:"reference,omitempty"`
	StudentID *uuid.UUID        `json:"student_id,omitempty"`
	Amount    valueobject.Money `json:"amount"`
	Outgoing  bool              `json:"outgoing"`
	Date      valueobject.Date  `json:"date"`
	Detail    string            `json:"detail,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Monthly builds the reconciled report for one YYYY-MM month. A non-nil
// branchID narrows every side of the reconciliation to that branch.
func (s *ReportService) Monthly(ctx context.Context, tenantID uuid.UUID, month string, branchID *uuid.UUID) (*MonthlyReportResponse, error) {
	if !valueobject.ValidMonth(month) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Report month must be YYYY-MM")
	}

	recordFilter := finance.CollectionFilter{Filter: shared.DefaultFilter(), AccrualMonth: month, BranchID: branchID}
	recordFilter.PageSize = 0
	records, err := s.collectionRepo.FindAllForTenant(ctx, tenantID, recordFilter)
	if err != nil {
		return nil, err
	}

	previousDues, err := s.previousDueRepo.FindTouchingMonth(ctx, tenantID, month)
	if err != nil {
		return nil, err
	}
	if branchID != nil {
		scoped := previousDues[:0]
		for _, item := range previousDues {
			if item.BranchID == *branchID {
				scoped = append(scoped, item)
			}
		}
		previousDues = scoped
	}

	expenseFilter := finance.ExpenseFilter{Filter: shared.DefaultFilter(), Month: month, BranchID: branchID}
	expenseFilter.PageSize = 0
	expenses, err := s.expenseRepo.FindAllForTenant(ctx, tenantID, expenseFilter)
	if err != nil {
		return nil, err
	}

	totals, err := s.reporting.MonthlyTotals(month, records, previousDues, expenses)
	if err != nil {
		return nil, err
	}

	return &MonthlyReportResponse{
		Month:                totals.Month,
		TotalCollected:       totals.TotalCollected,
		TotalCash:            totals.TotalCash,
		TotalOnline:          totals.TotalOnline,
		TotalDue:             totals.TotalDue,
		PreviousDueCollected: totals.PreviousDueCollected,
		TotalExpenses:        totals.TotalExpenses,
		NetProfit:            totals.NetProfit,
		RecordCount:          totals.RecordCount,
	}, nil
}

// Transactions returns every money movement in a month, newest first:
// fee collections, previous-due payments, advance payments and expenses
func (s *ReportService) Transactions(ctx context.Context, tenantID uuid.UUID, month string) ([]TransactionResponse, error) {
	if !valueobject.ValidMonth(month) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Transaction month must be YYYY-MM")
	}

	recordFilter := finance.CollectionFilter{Filter: shared.DefaultFilter(), AccrualMonth: month}
	recordFilter.PageSize = 0
	records, err := s.collectionRepo.FindAllForTenant(ctx, tenantID, recordFilter)
	if err != nil {
		return nil, err
	}

	prevFilter := finance.PreviousDueFilter{Filter: shared.DefaultFilter(), PaidMonth: month}
	prevFilter.PageSize = 0
	previousDues, err := s.previousDueRepo.FindAllForTenant(ctx, tenantID, prevFilter)
	if err != nil {
		return nil, err
	}

	advFilter := shared.DefaultFilter()
	advFilter.PageSize = 0
	advances, err := s.advanceRepo.FindAllForTenant(ctx, tenantID, advFilter)
	if err != nil {
		return nil, err
	}

	expenseFilter := finance.ExpenseFilter{Filter: shared.DefaultFilter(), Month: month}
	expenseFilter.PageSize = 0
	expenses, err := s.expenseRepo.FindAllForTenant(ctx, tenantID, expenseFilter)
	if err != nil {
		return nil, err
	}

	feed := make([]TransactionResponse, 0, len(records)+len(previousDues)+len(advances)+len(expenses))

	for i := range records {
		r := &records[i]
		studentID := r.StudentID
		feed = append(feed, TransactionResponse{
			ID:        r.ID,
			Kind:      TransactionKindCollection,
			Reference: r.ReceiptNumber,
			StudentID: &studentID,
			Amount:    r.AmountPaid(),
			Date:      r.PaymentDate,
			Detail:    r.Remark,
			CreatedAt: r.CreatedAt,
		})
	}

	for i := range previousDues {
		p := &previousDues[i]
		studentID := p.StudentID
		feed = append(feed, TransactionResponse{
			ID:        p.ID,
			Kind:      TransactionKindPreviousDue,
			StudentID: &studentID,
			Amount:    p.Amount,
			Date:      p.PaidOn,
			Detail:    "due from " + p.OriginalMonth,
			CreatedAt: p.CreatedAt,
		})
	}

	for i := range advances {
		a := &advances[i]
		if a.PaidOn.Month() != month {
			continue
		}
		studentID := a.StudentID
		feed = append(feed, TransactionResponse{
			ID:        a.ID,
			Kind:      TransactionKindAdvance,
			StudentID: &studentID,
			Amount:    a.Amount,
			Date:      a.PaidOn,
			Detail:    a.Note,
			CreatedAt: a.CreatedAt,
		})
	}

	for i := range expenses {
		e := &expenses[i]
		feed = append(feed, TransactionResponse{
			ID:        e.ID,
			Kind:      TransactionKindExpense,
			Reference: e.ExpenseNumber,
			Amount:    e.Amount(),
			Outgoing:  true,
			Date:      e.IncurredOn,
			Detail:    e.Title,
			CreatedAt: e.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		if !feed[i].Date.Equal(feed[j].Date) {
			return feed[j].Date.Before(feed[i].Date)
		}
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	return feed, nil
}
