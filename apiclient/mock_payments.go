package apiclient

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/models"
)

// declinedLast4 marks the test card that is always declined.
const declinedLast4 = "0002"

// PaymentMethod is a stored card or bank account offered by the mock processor.
type PaymentMethod struct {
	ID          string               `json:"id"`
	Type        models.PaymentMethod `json:"type"`
	Last4       string               `json:"last4"`
	Brand       string               `json:"brand,omitempty"`
	AccountType string               `json:"accountType,omitempty"`
}

// MockPaymentProcessor stands in for a payment gateway during development. It never
// moves money.
type MockPaymentProcessor struct {
	methods []PaymentMethod
	delay   time.Duration
	nowTime func() time.Time
}

type MockPaymentOption func(*MockPaymentProcessor)

func WithPaymentDelay(d time.Duration) MockPaymentOption {
	return func(p *MockPaymentProcessor) {
		p.delay = d
	}
}

func WithPaymentNowTime(nowFunc func() time.Time) MockPaymentOption {
	return func(p *MockPaymentProcessor) {
		p.nowTime = nowFunc
	}
}

func NewMockPaymentProcessor(options ...MockPaymentOption) *MockPaymentProcessor {
	p := &MockPaymentProcessor{
		methods: []PaymentMethod{
			{ID: "card_1", Type: models.MethodCreditCard, Last4: "4242", Brand: "Visa"},
			{ID: "card_2", Type: models.MethodCreditCard, Last4: "5555", Brand: "Mastercard"},
			{ID: "card_declined", Type: models.MethodCreditCard, Last4: declinedLast4, Brand: "Visa"},
			{ID: "bank_1", Type: models.MethodBankTransfer, Last4: "6789", AccountType: "Checking"},
		},
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *MockPaymentProcessor) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return append([]PaymentMethod(nil), p.methods...), nil
}

// Process settles req against the method named by StripePaymentMethodID. The declined
// test card yields a FAILED payment rather than an error.
func (p *MockPaymentProcessor) Process(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, errors.Wrap(colterrors.ErrValidation, "amount must be greater than zero")
	}
	method, ok := lo.Find(p.methods, func(m PaymentMethod) bool { return m.ID == req.StripePaymentMethodID })
	if !ok {
		return nil, errors.Wrapf(colterrors.ErrValidation, "unknown payment method %q", req.StripePaymentMethodID)
	}

	status := models.PaymentCompleted
	if method.Last4 == declinedLast4 {
		status = models.PaymentFailed
	}
	now := p.nowTime()
	return &models.Payment{
		ID:            1000 + rand.Int64N(10000),
		Amount:        req.Amount,
		PaymentDate:   now.Format(time.RFC3339),
		PaymentType:   req.PaymentType,
		PaymentMethod: method.Type,
		Status:        status,
		TransactionID: "txn_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Description:   req.Description,
		CreatedAt:     now.Format(time.RFC3339),
	}, nil
}

func (p *MockPaymentProcessor) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
