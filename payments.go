package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Payment is money received against an invoice.
type Payment struct {
	ID                  int64      `json:"id" harvest:"required"`
	InvoiceID           int64      `json:"invoice_id" harvest:"required"`
	Amount              float64    `json:"amount" harvest:"required"`
	PaidAt              time.Time  `json:"paid_at" harvest:"required"`
	Notes               *string    `json:"notes,omitempty"`
	RecordedBy          *string    `json:"recorded_by,omitempty"`
	RecordedByEmail     *string    `json:"recorded_by_email,omitempty"`
	PayPalTransactionID *int64     `json:"pay_pal_transaction_id,omitempty"`
	Authorization       *string    `json:"authorization,omitempty"`
	PaymentGatewayID    *int64     `json:"payment_gateway_id,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// PaymentParams is the caller-settable subset for recording a payment.
type PaymentParams struct {
	Amount float64   `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
	Notes  *string   `json:"notes,omitempty"`
}

// GetPayments lists the payments recorded on an invoice.
func (a *API) GetPayments(ctx context.Context, invoiceID int64) ([]Payment, error) {
	return fetchList[Payment](ctx, a, fmt.Sprintf("/invoices/%d/payments", invoiceID), nil)
}

// GetPayment fetches one payment on an invoice.
func (a *API) GetPayment(ctx context.Context, invoiceID, paymentID int64) (Payment, error) {
	return fetchOne[Payment](ctx, a, fmt.Sprintf("/invoices/%d/payments/%d", invoiceID, paymentID), nil)
}

// CreatePayment records a payment against an invoice.
func (a *API) CreatePayment(ctx context.Context, invoiceID int64, params *PaymentParams) (Payment, error) {
	return create[Payment](ctx, a, fmt.Sprintf("/invoices/%d/payments", invoiceID), params)
}

// DeletePayment removes a payment and returns the service's confirmation
// body.
func (a *API) DeletePayment(ctx context.Context, invoiceID, paymentID int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/invoices/%d/payments/%d", invoiceID, paymentID), nil)
}
