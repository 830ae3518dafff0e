package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// InvoiceMessage is a message sent (or logged) on an invoice, including
// the bookkeeping entries the state transitions leave behind.
type InvoiceMessage struct {
	ID                int64      `json:"id" harvest:"required"`
	InvoiceID         int64      `json:"invoice_id" harvest:"required"`
	Subject           *string    `json:"subject,omitempty"`
	Body              *string    `json:"body,omitempty"`
	Recipients        *string    `json:"full_recipient_list,omitempty"`
	AttachPDF         *bool      `json:"attach_pdf,omitempty"`
	SendMeACopy       *bool      `json:"send_me_a_copy,omitempty"`
	ThankYou          *bool      `json:"thank_you,omitempty"`
	IncludePayPalLink *bool      `json:"include_pay_pal_link,omitempty"`
	SendReminderOn    *Date      `json:"send_reminder_on,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// InvoiceMessageParams is the caller-settable subset for sending an
// invoice message. Recipients is a comma-separated address list.
type InvoiceMessageParams struct {
	Recipients        string  `json:"recipients"`
	Subject           *string `json:"subject,omitempty"`
	Body              *string `json:"body,omitempty"`
	AttachPDF         *bool   `json:"attach_pdf,omitempty"`
	SendMeACopy       *bool   `json:"send_me_a_copy,omitempty"`
	IncludePayPalLink *bool   `json:"include_pay_pal_link,omitempty"`
}

// GetInvoiceMessages lists the messages recorded on an invoice.
func (a *API) GetInvoiceMessages(ctx context.Context, invoiceID int64) ([]InvoiceMessage, error) {
	return fetchList[InvoiceMessage](ctx, a, fmt.Sprintf("/invoices/%d/messages", invoiceID), nil)
}

// GetInvoiceMessage fetches one message on an invoice.
func (a *API) GetInvoiceMessage(ctx context.Context, invoiceID, messageID int64) (InvoiceMessage, error) {
	return fetchOne[InvoiceMessage](ctx, a, fmt.Sprintf("/invoices/%d/messages/%d", invoiceID, messageID), nil)
}

// CreateInvoiceMessage sends the invoice to the given recipients.
func (a *API) CreateInvoiceMessage(ctx context.Context, invoiceID int64, params *InvoiceMessageParams) (InvoiceMessage, error) {
	return create[InvoiceMessage](ctx, a, fmt.Sprintf("/invoices/%d/messages", invoiceID), params)
}

// DeleteInvoiceMessage removes a message and returns the service's
// confirmation body.
func (a *API) DeleteInvoiceMessage(ctx context.Context, invoiceID, messageID int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/invoices/%d/messages/%d", invoiceID, messageID), nil)
}

// MarkInvoiceSent moves an invoice out of draft, logging body as the
// message text.
func (a *API) MarkInvoiceSent(ctx context.Context, invoiceID int64, body string) (string, error) {
	return a.markInvoice(ctx, invoiceID, "mark_as_sent", body)
}

// MarkInvoiceDraft moves an invoice back to draft.
func (a *API) MarkInvoiceDraft(ctx context.Context, invoiceID int64, body string) (string, error) {
	return a.markInvoice(ctx, invoiceID, "mark_as_draft", body)
}

// MarkInvoiceClosed writes an invoice off.
func (a *API) MarkInvoiceClosed(ctx context.Context, invoiceID int64, body string) (string, error) {
	return a.markInvoice(ctx, invoiceID, "mark_as_closed", body)
}

// ReopenInvoice reopens a closed invoice.
func (a *API) ReopenInvoice(ctx context.Context, invoiceID int64, body string) (string, error) {
	return a.markInvoice(ctx, invoiceID, "re_open", body)
}

// markInvoice drives the invoice state machine. Each transition is a POST
// under /messages whose body is logged as an invoice message.
func (a *API) markInvoice(ctx context.Context, invoiceID int64, action, body string) (string, error) {
	payload, err := wrap("invoice_message", map[string]string{"body": body})
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("/invoices/%d/messages/%s", invoiceID, action)
	return a.doString(ctx, http.MethodPost, path, payload)
}
