package models

import "github.com/shopspring/decimal"

type Payment struct {
	ID                    int64           `json:"id"`
	Amount                decimal.Decimal `json:"amount"`
	PaymentDate           string          `json:"paymentDate,omitempty"`
	DueDate               string          `json:"dueDate,omitempty"`
	PaymentType           PaymentType     `json:"paymentType"`
	PaymentMethod         PaymentMethod   `json:"paymentMethod,omitempty"`
	Status                PaymentStatus   `json:"status"`
	StripePaymentIntentID string          `json:"stripePaymentIntentId,omitempty"`
	TransactionID         string          `json:"transactionId,omitempty"`
	Description           string          `json:"description,omitempty"`
	Tenant                *Tenant         `json:"tenant,omitempty"`
	Unit                  *Unit           `json:"unit,omitempty"`
	CreatedAt             string          `json:"createdAt,omitempty"`
}

type PaymentRequest struct {
	Amount                decimal.Decimal `json:"amount"`
	PaymentType           PaymentType     `json:"paymentType"`
	PaymentMethod         PaymentMethod   `json:"paymentMethod,omitempty"`
	Description           string          `json:"description,omitempty"`
	StripePaymentMethodID string          `json:"stripePaymentMethodId,omitempty"`
}

type PaymentStatusUpdate struct {
	Status PaymentStatus `json:"status"`
}
