package apiclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-colten/apiclient"
	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/models"
)

func TestMockPaymentProcessor(t *testing.T) {
	p := apiclient.NewMockPaymentProcessor()
	ctx := context.Background()

	methods, err := p.PaymentMethods(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, methods)

	tests := []struct {
		name     string
		methodID string
		amount   string
		status   models.PaymentStatus
		err      error
	}{
		{"visa completes", "card_1", "1250.00", models.PaymentCompleted, nil},
		{"bank completes", "bank_1", "99.99", models.PaymentCompleted, nil},
		{"declined card fails", "card_declined", "10", models.PaymentFailed, nil},
		{"unknown method", "card_9", "10", "", colterrors.ErrValidation},
		{"zero amount", "card_1", "0", "", colterrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := p.Process(ctx, models.PaymentRequest{
				Amount:                decimal.RequireFromString(tt.amount),
				PaymentType:           models.PaymentRent,
				StripePaymentMethodID: tt.methodID,
			})
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.status, payment.Status)
			require.True(t, payment.Amount.Equal(decimal.RequireFromString(tt.amount)))
			require.Regexp(t, `^txn_[0-9a-f]{32}$`, payment.TransactionID)
		})
	}
}

func TestMockPaymentProcessor_HonoursContext(t *testing.T) {
	p := apiclient.NewMockPaymentProcessor(apiclient.WithPaymentDelay(time.Minute))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.PaymentMethods(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
