package finance

import (
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// MonthlyTotals is the reconciled view of one calendar month.
// Collected/cash/online count the money that physically arrived in the
// month, including dues from earlier months paid in it; the same
// payments are subtracted from the months they accrued in, so summing
// TotalCollected across months equals the total of all payments received.
type MonthlyTotals struct {
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

// ReportingService computes monthly fee reconciliation and profit/loss.
// It is a pure domain service: every method is a synchronous function of
// its inputs with no repository access.
type ReportingService struct{}

// NewReportingService creates a new reporting service
func NewReportingService() *ReportingService {
	return &ReportingService{}
}

// MonthlyTotals reconciles one month. Inputs may span any date range;
// filtering happens here.
//
// A record accruing in the requested month contributes its full paid
// amount, but the portion of that amount which arrived in later months
// (tracked by PreviousDuePaidItem rows pointing back at this month) is
// subtracted again, floored at zero. Conversely, previous-due payments
// that arrived in the requested month are added on top. Each payment is
// therefore counted in exactly one monthly view: the month it arrived.
func (s *ReportingService) MonthlyTotals(
	month string,
	records []CollectionRecord,
	previousDues []PreviousDuePaidItem,
	expenses []Expense,
) (MonthlyTotals, error) {
	if !valueobject.ValidMonth(month) {
		return MonthlyTotals{}, shared.NewDomainError("INVALID_MONTH", "Report month must be YYYY-MM")
	}

	collected := valueobject.ZeroINR()
	cash := valueobject.ZeroINR()
	online := valueobject.ZeroINR()
	due := valueobject.ZeroINR()
	count := 0

	for i := range records {
		r := &records[i]
		if r.AccrualMonth != month {
			continue
		}
		collected = collected.MustAdd(r.AmountPaid())
		cash = cash.MustAdd(r.Cash)
		online = online.MustAdd(r.Online)
		due = due.MustAdd(r.Due())
		count++
	}

	prevDueIn := valueobject.ZeroINR()
	for i := range previousDues {
		p := &previousDues[i]
		switch {
		case p.PaidMonth() == month:
			// Arrived this month against an older due.
			collected = collected.MustAdd(p.Amount)
			prevDueIn = prevDueIn.MustAdd(p.Amount)
			switch p.Method {
			case PaymentMethodCash:
				cash = cash.MustAdd(p.Amount)
			case PaymentMethodOnline:
				online = online.MustAdd(p.Amount)
			}
		case p.OriginalMonth == month:
			// Accrued this month but arrived later; the record's paid
			// fields already include it, so take it back out.
			collected = collected.MustSubtract(p.Amount).ClampZero()
			switch p.Method {
			case PaymentMethodCash:
				cash = cash.MustSubtract(p.Amount).ClampZero()
			case PaymentMethodOnline:
				online = online.MustSubtract(p.Amount).ClampZero()
			}
		}
	}

	spent := valueobject.ZeroINR()
	for i := range expenses {
		e := &expenses[i]
		if e.IncurredOn.Month() != month {
			continue
		}
		spent = spent.MustAdd(e.Amount())
	}

	return MonthlyTotals{
		Month:                month,
		TotalCollected:       collected,
		TotalCash:            cash,
		TotalOnline:          online,
		TotalDue:             due,
		PreviousDueCollected: prevDueIn,
		TotalExpenses:        spent,
		NetProfit:            collected.MustSubtract(spent),
		RecordCount:          count,
	}, nil
}
