package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// InvoiceCategory is a line-item category on invoices
// (the service calls them invoice item categories).
type InvoiceCategory struct {
	ID           int64      `json:"id" harvest:"required"`
	Name         string     `json:"name" harvest:"required"`
	UseAsService *bool      `json:"use_as_service,omitempty"`
	UseAsExpense *bool      `json:"use_as_expense,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// InvoiceCategoryParams is the caller-settable subset for creating or
// updating a category.
type InvoiceCategoryParams struct {
	Name         string `json:"name"`
	UseAsService *bool  `json:"use_as_service,omitempty"`
	UseAsExpense *bool  `json:"use_as_expense,omitempty"`
}

// GetInvoiceCategories lists the account's invoice item categories.
func (a *API) GetInvoiceCategories(ctx context.Context) ([]InvoiceCategory, error) {
	return fetchList[InvoiceCategory](ctx, a, "/invoice_item_categories", nil)
}

// CreateInvoiceCategory adds a category.
func (a *API) CreateInvoiceCategory(ctx context.Context, params *InvoiceCategoryParams) (InvoiceCategory, error) {
	return create[InvoiceCategory](ctx, a, "/invoice_item_categories", params)
}

// UpdateInvoiceCategory changes a category.
func (a *API) UpdateInvoiceCategory(ctx context.Context, id int64, params *InvoiceCategoryParams) (InvoiceCategory, error) {
	return update[InvoiceCategory](ctx, a, fmt.Sprintf("/invoice_item_categories/%d", id), params)
}

// DeleteInvoiceCategory removes a category and returns the service's
// confirmation body.
func (a *API) DeleteInvoiceCategory(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/invoice_item_categories/%d", id), nil)
}
