package harvest

import (
	"context"
	"fmt"
	"time"
)

// EntriesOptions filter the reporting endpoints. From and To are required
// by the service and rendered in its compact YYYYMMDD form; the YesNo
// filters render as "yes"/"no".
type EntriesOptions struct {
	From Date `url:"from"`
	To   Date `url:"to"`

	// UserID narrows a project report to one person.
	UserID *int64 `url:"user_id,omitempty"`
	// ProjectID narrows a person report to one project.
	ProjectID    *int64     `url:"project_id,omitempty"`
	Billable     *YesNo     `url:"billable,omitempty"`
	OnlyBilled   *YesNo     `url:"only_billed,omitempty"`
	OnlyUnbilled *YesNo     `url:"only_unbilled,omitempty"`
	IsClosed     *YesNo     `url:"is_closed,omitempty"`
	UpdatedSince *time.Time `url:"updated_since,omitempty"`
}

// GetProjectEntries reports the day entries logged against one project in
// a date range.
func (a *API) GetProjectEntries(ctx context.Context, projectID int64, opts EntriesOptions) ([]DayEntry, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[DayEntry](ctx, a, fmt.Sprintf("/projects/%d/entries", projectID), params)
}

// GetUserEntries reports the day entries logged by one person in a date
// range.
func (a *API) GetUserEntries(ctx context.Context, userID int64, opts EntriesOptions) ([]DayEntry, error) {
	params, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	return fetchList[DayEntry](ctx, a, fmt.Sprintf("/people/%d/entries", userID), params)
}
