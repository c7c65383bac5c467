package models

import "time"

// Payment is a fee billed to a student.
type Payment struct {
	ID          int64         `db:"id" json:"id"`
	StudentID   int64         `db:"student_id" json:"studentId"`
	Amount      float64       `db:"amount" json:"amount"`
	Date        *time.Time    `db:"date" json:"date,omitempty"`
	Status      PaymentStatus `db:"status" json:"status"`
	PaidAmount  *float64      `db:"paid_amount" json:"paidAmount,omitempty"`
	Method      string        `db:"method" json:"method"`
	Description string        `db:"description" json:"description"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
}

// Collected returns the amount actually received for the payment.
func (p Payment) Collected() float64 {
	switch p.Status {
	case PaymentStatusPaid:
		if p.PaidAmount != nil {
			return *p.PaidAmount
		}
		return p.Amount
	case PaymentStatusPartial:
		if p.PaidAmount != nil {
			return *p.PaidAmount
		}
		return 0
	case PaymentStatusUnpaid, PaymentStatusOverdue, PaymentStatusRefunded:
		return 0
	default:
		return 0
	}
}

// Outstanding returns the amount still owed on the payment.
func (p Payment) Outstanding() float64 {
	switch p.Status {
	case PaymentStatusUnpaid, PaymentStatusOverdue:
		return p.Amount
	case PaymentStatusPartial:
		owed := p.Amount - p.Collected()
		if owed < 0 {
			return 0
		}
		return owed
	case PaymentStatusPaid, PaymentStatusRefunded:
		return 0
	default:
		return 0
	}
}

// PaymentFilter scopes payment listings.
type PaymentFilter struct {
	StudentID *int64
	Status    PaymentStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
	SortOrder string
}
