package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const paymentColumns = "id, student_id, amount, date, status, paid_amount, method, description, created_at"

// PaymentRepository manages persistence for fee payments.
type PaymentRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *sqlx.DB, deleter *Deleter) *PaymentRepository {
	return &PaymentRepository{db: db, deleter: deleter}
}

// List returns payments matching filters along with total count.
func (r *PaymentRepository) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error) {
	var cond conditions
	if filter.StudentID != nil {
		cond.add("student_id = $%d", *filter.StudentID)
	}
	if filter.Status != "" {
		cond.add("status = $%d", filter.Status)
	}
	if filter.DateFrom != nil {
		cond.add("date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		cond.add("date <= $%d", *filter.DateTo)
	}

	orderBy := fmt.Sprintf("date %s NULLS LAST, id ASC", sortOrder(filter.SortOrder))

	var payments []models.Payment
	total, err := listAndCount(ctx, r.db, &payments, paymentColumns, tablePayments, cond, orderBy, filter.Page, filter.PageSize, "payments")
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// FindByID fetches a payment by ID.
func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments WHERE id = $1"
	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Create inserts a new payment and assigns its generated ID.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	stampCreated(&payment.CreatedAt)
	const query = `INSERT INTO payments (student_id, amount, date, status, paid_amount, method, description, created_at)
		VALUES (:student_id, :amount, :date, :status, :paid_amount, :method, :description, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, payment)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	payment.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing payment.
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	const query = `UPDATE payments SET student_id = :student_id, amount = :amount, date = :date, status = :status,
		paid_amount = :paid_amount, method = :method, description = :description WHERE id = :id`
	return namedUpdate(ctx, r.db, query, payment, "payment")
}

// Delete removes a payment, reporting whether it existed.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tablePayments, id)
}
