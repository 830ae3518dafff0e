package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Project is a body of work hours are logged against, owned by a client.
type Project struct {
	ID                               int64      `json:"id" harvest:"required"`
	ClientID                         int64      `json:"client_id" harvest:"required"`
	Name                             string     `json:"name" harvest:"required"`
	Code                             *string    `json:"code,omitempty"`
	Active                           *bool      `json:"active,omitempty"`
	Billable                         *bool      `json:"billable,omitempty"`
	BillBy                           *string    `json:"bill_by,omitempty"`
	HourlyRate                       *float64   `json:"hourly_rate,omitempty"`
	Budget                           *float64   `json:"budget,omitempty"`
	BudgetBy                         *string    `json:"budget_by,omitempty"`
	NotifyWhenOverBudget             *bool      `json:"notify_when_over_budget,omitempty"`
	OverBudgetNotificationPercentage *float64   `json:"over_budget_notification_percentage,omitempty"`
	OverBudgetNotifiedAt             *Date      `json:"over_budget_notified_at,omitempty"`
	ShowBudgetToAll                  *bool      `json:"show_budget_to_all,omitempty"`
	Estimate                         *float64   `json:"estimate,omitempty"`
	EstimateBy                       *string    `json:"estimate_by,omitempty"`
	HintEarliestRecordAt             *Date      `json:"hint_earliest_record_at,omitempty"`
	HintLatestRecordAt               *Date      `json:"hint_latest_record_at,omitempty"`
	StartsOn                         *Date      `json:"starts_on,omitempty"`
	EndsOn                           *Date      `json:"ends_on,omitempty"`
	Notes                            *string    `json:"notes,omitempty"`
	CostBudget                       *float64   `json:"cost_budget,omitempty"`
	CostBudgetIncludeExpenses        *bool      `json:"cost_budget_include_expenses,omitempty"`
	CreatedAt                        *time.Time `json:"created_at,omitempty"`
	UpdatedAt                        *time.Time `json:"updated_at,omitempty"`
}

// ProjectParams is the caller-settable subset for creating or updating a
// project.
type ProjectParams struct {
	ClientID   int64    `json:"client_id"`
	Name       string   `json:"name"`
	Active     *bool    `json:"active,omitempty"`
	Billable   *bool    `json:"billable,omitempty"`
	BillBy     *string  `json:"bill_by,omitempty"`
	Code       *string  `json:"code,omitempty"`
	Budget     *float64 `json:"budget,omitempty"`
	BudgetBy   *string  `json:"budget_by,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

// ProjectListOptions filter GET /projects.
type ProjectListOptions struct {
	ClientID     int64      `url:"client,omitempty"`
	UpdatedSince *time.Time `url:"updated_since,omitempty"`
}

// GetProjects lists the account's projects. opts may be nil.
func (a *API) GetProjects(ctx context.Context, opts *ProjectListOptions) ([]Project, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Project](ctx, a, "/projects", params)
}

// GetProject fetches one project.
func (a *API) GetProject(ctx context.Context, id int64) (Project, error) {
	return fetchOne[Project](ctx, a, fmt.Sprintf("/projects/%d", id), nil)
}

// CreateProject adds a project.
func (a *API) CreateProject(ctx context.Context, params *ProjectParams) (Project, error) {
	return create[Project](ctx, a, "/projects", params)
}

// UpdateProject changes a project.
func (a *API) UpdateProject(ctx context.Context, id int64, params *ProjectParams) (Project, error) {
	return update[Project](ctx, a, fmt.Sprintf("/projects/%d", id), params)
}

// DeleteProject removes a project and returns the service's confirmation
// body.
func (a *API) DeleteProject(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
}

// ToggleProject flips a project between active and archived. Unlike the
// people and client toggles this endpoint is a PUT.
func (a *API) ToggleProject(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodPut, fmt.Sprintf("/projects/%d/toggle", id), nil)
}
