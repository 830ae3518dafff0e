package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client is a customer projects are billed to.
type Client struct {
	ID                      int64      `json:"id" harvest:"required"`
	Name                    string     `json:"name" harvest:"required"`
	Active                  *bool      `json:"active,omitempty"`
	Currency                *string    `json:"currency,omitempty"`
	CurrencySymbol          *string    `json:"currency_symbol,omitempty"`
	Details                 *string    `json:"details,omitempty"`
	HighriseID              *int64     `json:"highrise_id,omitempty"`
	CacheVersion            *int64     `json:"cache_version,omitempty"`
	DefaultInvoiceTimeframe *string    `json:"default_invoice_timeframe,omitempty"`
	LastInvoiceKind         *string    `json:"last_invoice_kind,omitempty"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

// ClientParams is the caller-settable subset for creating or updating a
// client.
type ClientParams struct {
	Name     string  `json:"name"`
	Active   *bool   `json:"active,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Details  *string `json:"details,omitempty"`
}

// ClientListOptions filter GET /clients.
type ClientListOptions struct {
	UpdatedSince *time.Time `url:"updated_since,omitempty"`
}

// GetClients lists the account's clients. opts may be nil.
func (a *API) GetClients(ctx context.Context, opts *ClientListOptions) ([]Client, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Client](ctx, a, "/clients", params)
}

// GetClient fetches one client.
func (a *API) GetClient(ctx context.Context, id int64) (Client, error) {
	return fetchOne[Client](ctx, a, fmt.Sprintf("/clients/%d", id), nil)
}

// CreateClient adds a client.
func (a *API) CreateClient(ctx context.Context, params *ClientParams) (Client, error) {
	return create[Client](ctx, a, "/clients", params)
}

// UpdateClient changes a client.
func (a *API) UpdateClient(ctx context.Context, id int64, params *ClientParams) (Client, error) {
	return update[Client](ctx, a, fmt.Sprintf("/clients/%d", id), params)
}

// DeleteClient removes a client and returns the service's confirmation
// body. Clients with projects or invoices cannot be deleted.
func (a *API) DeleteClient(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil)
}

// ToggleClient flips a client between active and archived.
func (a *API) ToggleClient(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodPost, fmt.Sprintf("/clients/%d/toggle", id), nil)
}
