package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type paymentRepository interface {
	List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error)
	FindByID(ctx context.Context, id int64) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreatePaymentRequest holds payload for billing a student.
type CreatePaymentRequest struct {
	StudentID   int64                `json:"studentId" validate:"required,gt=0"`
	Amount      float64              `json:"amount" validate:"gt=0"`
	Date        *string              `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      models.PaymentStatus `json:"status" validate:"required,oneof=paid unpaid partial overdue refunded"`
	PaidAmount  *float64             `json:"paidAmount" validate:"omitempty,gte=0"`
	Method      string               `json:"method" validate:"max=50"`
	Description string               `json:"description" validate:"max=500"`
}

// PatchPaymentRequest holds the subset of payment fields to change.
type PatchPaymentRequest struct {
	StudentID   *int64                `json:"studentId" validate:"omitempty,gt=0"`
	Amount      *float64              `json:"amount" validate:"omitempty,gt=0"`
	Date        *string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      *models.PaymentStatus `json:"status" validate:"omitempty,oneof=paid unpaid partial overdue refunded"`
	PaidAmount  *float64              `json:"paidAmount" validate:"omitempty,gte=0"`
	Method      *string               `json:"method" validate:"omitempty,max=50"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
}

// PaymentService handles fee billing and settlement.
type PaymentService struct {
	repo      paymentRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPaymentService constructs the payment service.
func NewPaymentService(repo paymentRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns payments and pagination metadata.
func (s *PaymentService) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, *models.Pagination, error) {
	payments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list payments")
	}
	return payments, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single payment.
func (s *PaymentService) Get(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "payment")
	}
	return payment, nil
}

// Create bills a student.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "payment")
	}
	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	payment := &models.Payment{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		Date:        date,
		Status:      req.Status,
		PaidAmount:  req.PaidAmount,
		Method:      req.Method,
		Description: req.Description,
	}
	if err := checkPayment(payment); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, internalError(err, "failed to create payment")
	}
	s.hooks.recorded(ctx, "payment", "create")
	return payment, nil
}

// Patch applies the supplied fields to an existing payment. An empty patch performs no write.
func (s *PaymentService) Patch(ctx context.Context, id int64, req PatchPaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "payment")
	}
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "payment")
	}
	if emptyPatch(req) {
		return payment, nil
	}

	if req.Date != nil {
		date, err := parseOptionalDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		payment.Date = date
	}
	if req.StudentID != nil {
		payment.StudentID = *req.StudentID
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	if req.PaidAmount != nil {
		payment.PaidAmount = req.PaidAmount
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Description != nil {
		payment.Description = *req.Description
	}
	if err := checkPayment(payment); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, updateError(err, "payment")
	}
	s.hooks.recorded(ctx, "payment", "update")
	return payment, nil
}

// Delete removes a payment and reports whether it existed.
func (s *PaymentService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "payment")
	}
	if existed {
		s.hooks.recorded(ctx, "payment", "delete")
	}
	return existed, nil
}

// checkPayment enforces the cross-field rules between amount, status and paidAmount.
func checkPayment(payment *models.Payment) error {
	var fields []appErrors.FieldError
	if payment.Status == models.PaymentStatusPartial && payment.PaidAmount == nil {
		fields = append(fields, appErrors.FieldError{Field: "paidAmount", Message: "is required when status is partial"})
	}
	if payment.PaidAmount != nil && *payment.PaidAmount > payment.Amount {
		fields = append(fields, appErrors.FieldError{Field: "paidAmount", Message: "must not exceed amount"})
	}
	return invalidFields("invalid payment payload", fields)
}
