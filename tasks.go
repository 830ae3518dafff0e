package harvest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Task is a kind of work hours can be logged against.
type Task struct {
	ID                int64      `json:"id" harvest:"required"`
	Name              string     `json:"name" harvest:"required"`
	BillableByDefault *bool      `json:"billable_by_default,omitempty"`
	IsDefault         *bool      `json:"is_default,omitempty"`
	DefaultHourlyRate *float64   `json:"default_hourly_rate,omitempty"`
	Deactivated       *bool      `json:"deactivated,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// TaskParams is the caller-settable subset for creating or updating a task.
type TaskParams struct {
	Name              string   `json:"name"`
	BillableByDefault *bool    `json:"billable_by_default,omitempty"`
	IsDefault         *bool    `json:"is_default,omitempty"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate,omitempty"`
}

// TaskListOptions filter GET /tasks.
type TaskListOptions struct {
	UpdatedSince *time.Time `url:"updated_since,omitempty"`
}

// GetTasks lists the account's tasks. opts may be nil.
func (a *API) GetTasks(ctx context.Context, opts *TaskListOptions) ([]Task, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[Task](ctx, a, "/tasks", params)
}

// GetTask fetches one task.
func (a *API) GetTask(ctx context.Context, id int64) (Task, error) {
	return fetchOne[Task](ctx, a, fmt.Sprintf("/tasks/%d", id), nil)
}

// CreateTask adds a task to the account.
func (a *API) CreateTask(ctx context.Context, params *TaskParams) (Task, error) {
	return create[Task](ctx, a, "/tasks", params)
}

// UpdateTask changes a task.
func (a *API) UpdateTask(ctx context.Context, id int64, params *TaskParams) (Task, error) {
	return update[Task](ctx, a, fmt.Sprintf("/tasks/%d", id), params)
}

// DeleteTask removes a task and returns the service's confirmation body.
// Tasks with logged hours cannot be deleted; the service answers 400.
func (a *API) DeleteTask(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil)
}

// ActivateTask reinstates a previously deactivated task.
func (a *API) ActivateTask(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/activate", id), nil)
}

// TaskAssignment links a task to a project it can be logged on.
type TaskAssignment struct {
	ID          int64      `json:"id" harvest:"required"`
	ProjectID   int64      `json:"project_id" harvest:"required"`
	TaskID      int64      `json:"task_id" harvest:"required"`
	Billable    *bool      `json:"billable,omitempty"`
	Deactivated *bool      `json:"deactivated,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	HourlyRate  *float64   `json:"hourly_rate,omitempty"`
	Estimate    *float64   `json:"estimate,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TaskAssignmentParams is the caller-settable subset for updating a task
// assignment.
type TaskAssignmentParams struct {
	Billable    *bool    `json:"billable,omitempty"`
	Deactivated *bool    `json:"deactivated,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
	Estimate    *float64 `json:"estimate,omitempty"`
}

// GetTaskAssignments lists the tasks assigned to a project.
func (a *API) GetTaskAssignments(ctx context.Context, projectID int64) ([]TaskAssignment, error) {
	return fetchList[TaskAssignment](ctx, a, fmt.Sprintf("/projects/%d/task_assignments", projectID), nil)
}

// GetTaskAssignment fetches one assignment on a project.
func (a *API) GetTaskAssignment(ctx context.Context, projectID, id int64) (TaskAssignment, error) {
	return fetchOne[TaskAssignment](ctx, a, fmt.Sprintf("/projects/%d/task_assignments/%d", projectID, id), nil)
}

// AssignTask adds an existing task to a project. The service takes the
// task reference wrapped as {"task": {"id": N}}.
func (a *API) AssignTask(ctx context.Context, projectID, taskID int64) (TaskAssignment, error) {
	path := fmt.Sprintf("/projects/%d/task_assignments", projectID)
	return send[TaskAssignment](ctx, a, http.MethodPost, path, "task", idRef{ID: taskID})
}

// AssignNewTask creates a task by name and assigns it to the project in
// one call.
func (a *API) AssignNewTask(ctx context.Context, projectID int64, name string) (TaskAssignment, error) {
	path := fmt.Sprintf("/projects/%d/task_assignments/add_with_create_new_task", projectID)
	return send[TaskAssignment](ctx, a, http.MethodPost, path, "task", nameRef{Name: name})
}

// UpdateTaskAssignment changes an assignment's rate, budget or flags.
func (a *API) UpdateTaskAssignment(ctx context.Context, projectID, id int64, params *TaskAssignmentParams) (TaskAssignment, error) {
	return update[TaskAssignment](ctx, a, fmt.Sprintf("/projects/%d/task_assignments/%d", projectID, id), params)
}

// RemoveTaskAssignment takes a task off a project and returns the
// service's confirmation body.
func (a *API) RemoveTaskAssignment(ctx context.Context, projectID, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d/task_assignments/%d", projectID, id), nil)
}
