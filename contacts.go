package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Contact is a person on a client's side.
type Contact struct {
	ID          int64      `json:"id" harvest:"required"`
	ClientID    int64      `json:"client_id" harvest:"required"`
	FirstName   string     `json:"first_name" harvest:"required"`
	LastName    string     `json:"last_name" harvest:"required"`
	Email       *string    `json:"email,omitempty"`
	Title       *string    `json:"title,omitempty"`
	PhoneOffice *string    `json:"phone_office,omitempty"`
	PhoneMobile *string    `json:"phone_mobile,omitempty"`
	Fax         *string    `json:"fax,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ContactParams is the caller-settable subset for creating or updating a
// contact.
type ContactParams struct {
	ClientID    int64   `json:"client_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email,omitempty"`
	Title       *string `json:"title,omitempty"`
	PhoneOffice *string `json:"phone_office,omitempty"`
	PhoneMobile *string `json:"phone_mobile,omitempty"`
	Fax         *string `json:"fax,omitempty"`
}

// ContactListOptions filter the contact list endpoints.
type ContactListOptions struct {
	UpdatedSince *time.Time `url:"updated_since,omitempty"`
}

// GetContacts lists contacts across all clients. opts may be nil.
func (a *API) GetContacts(ctx context.Context, opts *ContactListOptions) ([]Contact, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Contact](ctx, a, "/contacts", params)
}

// GetClientContacts lists one client's contacts. opts may be nil.
func (a *API) GetClientContacts(ctx context.Context, clientID int64, opts *ContactListOptions) ([]Contact, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Contact](ctx, a, fmt.Sprintf("/clients/%d/contacts", clientID), params)
}

// GetContact fetches one contact.
func (a *API) GetContact(ctx context.Context, id int64) (Contact, error) {
	return fetchOne[Contact](ctx, a, fmt.Sprintf("/contacts/%d", id), nil)
}

// CreateContact adds a contact under the client named in params.
func (a *API) CreateContact(ctx context.Context, params *ContactParams) (Contact, error) {
	return create[Contact](ctx, a, "/contacts", params)
}

// UpdateContact changes a contact.
func (a *API) UpdateContact(ctx context.Context, id int64, params *ContactParams) (Contact, error) {
	return update[Contact](ctx, a, fmt.Sprintf("/contacts/%d", id), params)
}

// DeleteContact removes a contact and returns the service's confirmation
// body.
func (a *API) DeleteContact(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/contacts/%d", id), nil)
}
