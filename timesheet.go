package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DayEntry is one timesheet record: hours booked by a user against a
// project task on a given day.
type DayEntry struct {
	ID                int64      `json:"id" harvest:"required"`
	UserID            int64      `json:"user_id" harvest:"required"`
	ProjectID         int64      `json:"project_id" harvest:"required"`
	TaskID            int64      `json:"task_id" harvest:"required"`
	SpentAt           Date       `json:"spent_at"`
	Hours             float64    `json:"hours"`
	Notes             *string    `json:"notes,omitempty"`
	Project           *string    `json:"project,omitempty"`
	Task              *string    `json:"task,omitempty"`
	Client            *string    `json:"client,omitempty"`
	StartedAt         *ClockTime `json:"started_at,omitempty"`
	EndedAt           *ClockTime `json:"ended_at,omitempty"`
	TimerStartedAt    *time.Time `json:"timer_started_at,omitempty"`
	HoursWithoutTimer *float64   `json:"hours_without_timer,omitempty"`
	IsClosed          *bool      `json:"is_closed,omitempty"`
	IsBilled          *bool      `json:"is_billed,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// Running reports whether the entry's timer is currently counting.
func (e DayEntry) Running() bool {
	return e.TimerStartedAt != nil
}

// DayEntryParams is the caller-settable subset for creating or updating a
// day entry. Omit Hours and set StartedAt to begin a running timer.
type DayEntryParams struct {
	ProjectID int64      `json:"project_id"`
	TaskID    int64      `json:"task_id"`
	SpentAt   Date       `json:"spent_at"`
	Hours     *float64   `json:"hours,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	StartedAt *ClockTime `json:"started_at,omitempty"`
	EndedAt   *ClockTime `json:"ended_at,omitempty"`
}

// Daily is the day view for one day: the entries logged that day plus the
// projects (with their assigned tasks) available for logging. Unlike the
// other responses its members arrive bare, not enveloped.
type Daily struct {
	ForDay     Date           `json:"for_day"`
	DayEntries []DayEntry     `json:"day_entries"`
	Projects   []DailyProject `json:"projects"`
}

// DailyProject is the project listing embedded in the day view.
type DailyProject struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Client   string      `json:"client"`
	Code     string      `json:"code"`
	Billable bool        `json:"billable"`
	Tasks    []DailyTask `json:"tasks"`
}

// DailyTask is a task available on a day-view project.
type DailyTask struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Billable bool   `json:"billable"`
}

// GetToday returns the day view for the current day.
func (a *API) GetToday(ctx context.Context) (Daily, error) {
	return a.getDaily(ctx, "/daily")
}

// GetDay returns the day view for an arbitrary day, addressed by day of
// year and year as the service requires.
func (a *API) GetDay(ctx context.Context, dayOfYear, year int) (Daily, error) {
	return a.getDaily(ctx, fmt.Sprintf("/daily/%d/%d", dayOfYear, year))
}

func (a *API) getDaily(ctx context.Context, path string) (Daily, error) {
	var page Daily
	req, err := a.NewRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return page, err
	}
	data, err := a.do(req)
	if err != nil {
		return page, err
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return page, fmt.Errorf("decoding day view: %w", err)
	}
	return page, nil
}

// GetDayEntry fetches a single timesheet entry.
func (a *API) GetDayEntry(ctx context.Context, id int64) (DayEntry, error) {
	return fetchOne[DayEntry](ctx, a, fmt.Sprintf("/daily/show/%d", id), nil)
}

// CreateDayEntry logs a new timesheet entry.
func (a *API) CreateDayEntry(ctx context.Context, params *DayEntryParams) (DayEntry, error) {
	return create[DayEntry](ctx, a, "/daily/add", params)
}

// UpdateDayEntry changes an existing entry. The service takes day-entry
// updates as POST, unlike the other resources.
func (a *API) UpdateDayEntry(ctx context.Context, id int64, params *DayEntryParams) (DayEntry, error) {
	return send[DayEntry](ctx, a, http.MethodPost, fmt.Sprintf("/daily/update/%d", id), resourceKey[DayEntry](), params)
}

// DeleteDayEntry removes an entry and returns the service's confirmation
// body.
func (a *API) DeleteDayEntry(ctx context.Context, id int64) (string, error) {
	return a.doString(ctx, http.MethodDelete, fmt.Sprintf("/daily/%d", id), nil)
}

// ToggleTimer starts the entry's timer, or stops it when running, and
// returns the entry in its new state.
func (a *API) ToggleTimer(ctx context.Context, id int64) (DayEntry, error) {
	return fetchOne[DayEntry](ctx, a, fmt.Sprintf("/daily/timer/%d", id), nil)
}
