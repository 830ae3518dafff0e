package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// User is an account member who can log time.
type User struct {
	ID                           int64      `json:"id" harvest:"required"`
	Email                        string     `json:"email" harvest:"required"`
	FirstName                    string     `json:"first_name" harvest:"required"`
	LastName                     string     `json:"last_name" harvest:"required"`
	IsAdmin                      *bool      `json:"is_admin,omitempty"`
	IsContractor                 *bool      `json:"is_contractor,omitempty"`
	IsActive                     *bool      `json:"is_active,omitempty"`
	Telephone                    *string    `json:"telephone,omitempty"`
	Department                   *string    `json:"department,omitempty"`
	Timezone                     *string    `json:"timezone,omitempty"`
	DefaultHourlyRate            *float64   `json:"default_hourly_rate,omitempty"`
	CostRate                     *float64   `json:"cost_rate,omitempty"`
	HasAccessToAllFutureProjects *bool      `json:"has_access_to_all_future_projects,omitempty"`
	CreatedAt                    *time.Time `json:"created_at,omitempty"`
	UpdatedAt                    *time.Time `json:"updated_at,omitempty"`
}

// UserParams is the caller-settable subset for creating or updating a user.
type UserParams struct {
	Email                        string   `json:"email"`
	FirstName                    string   `json:"first_name"`
	LastName                     string   `json:"last_name"`
	IsAdmin                      *bool    `json:"is_admin,omitempty"`
	IsContractor                 *bool    `json:"is_contractor,omitempty"`
	Telephone                    *string  `json:"telephone,omitempty"`
	Department                   *string  `json:"department,omitempty"`
	Timezone                     *string  `json:"timezone,omitempty"`
	DefaultHourlyRate            *float64 `json:"default_hourly_rate,omitempty"`
	CostRate                     *float64 `json:"cost_rate,omitempty"`
	HasAccessToAllFutureProjects *bool    `json:"has_access_to_all_future_projects,omitempty"`
}

// GetUsers lists the account's users.
func (a *API) GetUsers(ctx context.Context) ([]User, error) {
	return fetchList[User](ctx, a, "/people", nil)
}

// GetUser fetches one user.
func (a *API) GetUser(ctx context.Context, id int64) (User, error) {
	return fetchOne[User](ctx, a, fmt.Sprintf("/people/%d", id), nil)
}

// CreateUser adds a user to the account.
func (a *API) CreateUser(ctx context.Context, params *UserParams) (User, error) {
	return create[User](ctx, a, "/people", params)
}

// UpdateUser changes a user.
func (a *API) UpdateUser(ctx context.Context, id int64, params *UserParams) (User, error) {
	return update[User](ctx, a, fmt.Sprintf("/people/%d", id), params)
}

// DeleteUser removes a user and returns the service's confirmation body.
func (a *API) DeleteUser(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/people/%d", id), nil)
}

// ToggleUser flips a user between active and archived.
func (a *API) ToggleUser(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodPost, fmt.Sprintf("/people/%d/toggle", id), nil)
}

// UserAssignment links a user to a project they may log time against.
type UserAssignment struct {
	ID               int64      `json:"id" harvest:"required"`
	UserID           int64      `json:"user_id" harvest:"required"`
	ProjectID        int64      `json:"project_id" harvest:"required"`
	Deactivated      *bool      `json:"deactivated,omitempty"`
	IsProjectManager *bool      `json:"is_project_manager,omitempty"`
	HourlyRate       *float64   `json:"hourly_rate,omitempty"`
	Budget           *float64   `json:"budget,omitempty"`
	Estimate         *float64   `json:"estimate,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// UserAssignmentParams is the caller-settable subset for updating an
// assignment.
type UserAssignmentParams struct {
	Deactivated      *bool    `json:"deactivated,omitempty"`
	IsProjectManager *bool    `json:"is_project_manager,omitempty"`
	HourlyRate       *float64 `json:"hourly_rate,omitempty"`
	Budget           *float64 `json:"budget,omitempty"`
	Estimate         *float64 `json:"estimate,omitempty"`
}

// GetUserAssignments lists the users assigned to a project.
func (a *API) GetUserAssignments(ctx context.Context, projectID int64) ([]UserAssignment, error) {
	return fetchList[UserAssignment](ctx, a, fmt.Sprintf("/projects/%d/user_assignments", projectID), nil)
}

// GetUserAssignment fetches one assignment on a project.
func (a *API) GetUserAssignment(ctx context.Context, projectID, id int64) (UserAssignment, error) {
	return fetchOne[UserAssignment](ctx, a, fmt.Sprintf("/projects/%d/user_assignments/%d", projectID, id), nil)
}

// AssignUser adds an existing user to a project. The service takes the
// user reference wrapped as {"user": {"id": N}}.
func (a *API) AssignUser(ctx context.Context, projectID, userID int64) (UserAssignment, error) {
	path := fmt.Sprintf("/projects/%d/user_assignments", projectID)
	return send[UserAssignment](ctx, a, http.MethodPost, path, "user", idRef{ID: userID})
}

// UpdateUserAssignment changes an assignment's rate, budget or flags.
func (a *API) UpdateUserAssignment(ctx context.Context, projectID, id int64, params *UserAssignmentParams) (UserAssignment, error) {
	return update[UserAssignment](ctx, a, fmt.Sprintf("/projects/%d/user_assignments/%d", projectID, id), params)
}

// RemoveUserAssignment takes a user off a project and returns the
// service's confirmation body.
func (a *API) RemoveUserAssignment(ctx context.Context, projectID, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d/user_assignments/%d", projectID, id), nil)
}
