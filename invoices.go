package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Invoice is a bill issued to a client.
type Invoice struct {
	ID                 int64      `json:"id" harvest:"required"`
	ClientID           int64      `json:"client_id" harvest:"required"`
	Number             *string    `json:"number,omitempty"`
	Amount             *float64   `json:"amount,omitempty"`
	DueAmount          *float64   `json:"due_amount,omitempty"`
	DueAt              *Date      `json:"due_at,omitempty"`
	DueAtHumanFormat   *string    `json:"due_at_human_format,omitempty"`
	IssuedAt           *Date      `json:"issued_at,omitempty"`
	PeriodStart        *Date      `json:"period_start,omitempty"`
	PeriodEnd          *Date      `json:"period_end,omitempty"`
	Subject            *string    `json:"subject,omitempty"`
	Currency           *string    `json:"currency,omitempty"`
	State              *string    `json:"state,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	PurchaseOrder      *string    `json:"purchase_order,omitempty"`
	Tax                *float64   `json:"tax,omitempty"`
	TaxAmount          *float64   `json:"tax_amount,omitempty"`
	Tax2               *float64   `json:"tax2,omitempty"`
	Tax2Amount         *float64   `json:"tax2_amount,omitempty"`
	Discount           *float64   `json:"discount,omitempty"`
	DiscountAmount     *float64   `json:"discount_amount,omitempty"`
	EstimateID         *int64     `json:"estimate_id,omitempty"`
	RetainerID         *int64     `json:"retainer_id,omitempty"`
	RecurringInvoiceID *int64     `json:"recurring_invoice_id,omitempty"`
	ClientKey          *string    `json:"client_key,omitempty"`
	CSVLineItems       *string    `json:"csv_line_items,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// InvoiceParams is the caller-settable subset for creating or updating an
// invoice. Kind selects the generation mode (free_form, project, task,
// people, detailed); the import and period fields only apply to generated
// kinds.
type InvoiceParams struct {
	ClientID           int64    `json:"client_id"`
	Subject            *string  `json:"subject,omitempty"`
	IssuedAt           *Date    `json:"issued_at,omitempty"`
	DueAtHumanFormat   *string  `json:"due_at_human_format,omitempty"`
	Currency           *string  `json:"currency,omitempty"`
	Number             *string  `json:"number,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	PurchaseOrder      *string  `json:"purchase_order,omitempty"`
	Tax                *float64 `json:"tax,omitempty"`
	Tax2               *float64 `json:"tax2,omitempty"`
	Discount           *float64 `json:"discount,omitempty"`
	Kind               *string  `json:"kind,omitempty"`
	ProjectsToInvoice  *string  `json:"projects_to_invoice,omitempty"` // comma-separated project ids
	PeriodStart        *Date    `json:"period_start,omitempty"`
	PeriodEnd          *Date    `json:"period_end,omitempty"`
	ImportHours        *string  `json:"import_hours,omitempty"`
	ImportExpenses     *string  `json:"import_expenses,omitempty"`
	ExpensePeriodStart *Date    `json:"expense_period_start,omitempty"`
	ExpensePeriodEnd   *Date    `json:"expense_period_end,omitempty"`
	CSVLineItems       *string  `json:"csv_line_items,omitempty"`
}

// InvoiceListOptions filter GET /invoices. Status matches the invoice
// state (open, partial, draft, paid, unpaid, past_due); From and To
// constrain issue dates. Pages hold 50 invoices.
type InvoiceListOptions struct {
	Page         int        `url:"page,omitempty"`
	Status       string     `url:"status,omitempty"`
	From         *Date      `url:"from,omitempty"`
	To           *Date      `url:"to,omitempty"`
	UpdatedSince *time.Time `url:"updated_since,omitempty"`
	ClientID     int64      `url:"client,omitempty"`
}

// GetInvoices lists invoices, newest first. opts may be nil.
func (a *API) GetInvoices(ctx context.Context, opts *InvoiceListOptions) ([]Invoice, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Invoice](ctx, a, "/invoices", params)
}

// GetInvoice fetches one invoice.
func (a *API) GetInvoice(ctx context.Context, id int64) (Invoice, error) {
	return fetchOne[Invoice](ctx, a, fmt.Sprintf("/invoices/%d", id), nil)
}

// CreateInvoice issues a new invoice.
func (a *API) CreateInvoice(ctx context.Context, params *InvoiceParams) (Invoice, error) {
	return create[Invoice](ctx, a, "/invoices", params)
}

// UpdateInvoice changes an invoice.
func (a *API) UpdateInvoice(ctx context.Context, id int64, params *InvoiceParams) (Invoice, error) {
	return update[Invoice](ctx, a, fmt.Sprintf("/invoices/%d", id), params)
}

// DeleteInvoice removes an invoice and returns the service's confirmation
// body.
func (a *API) DeleteInvoice(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/invoices/%d", id), nil)
}
