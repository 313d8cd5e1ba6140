package freshbooks

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// timeEntryService implements the TimeEntryService interface
type timeEntryService struct {
	client *Client
}

// List retrieves one page of time entries
func (s *timeEntryService) List(ctx context.Context, opts *ListOptions) (*Page[TimeEntry], error) {
	raw, err := s.client.get(ctx, s.client.timetrackingPath("time_entries"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list time entries")
	}
	return decodePage[TimeEntry](raw, "time_entries")
}

// Get retrieves a single time entry by ID
func (s *timeEntryService) Get(ctx context.Context, timeEntryID int64) (*TimeEntry, error) {
	raw, err := s.client.get(ctx, s.client.timetrackingPath("time_entries/%d", timeEntryID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get time entry %d", timeEntryID)
	}
	return decodeOne[TimeEntry](raw, "time_entry")
}

// Create creates a new time entry
func (s *timeEntryService) Create(ctx context.Context, params *TimeEntryParams) (*TimeEntry, error) {
	if params == nil || params.ProjectID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "time entry project_id is required")
	}

	raw, err := s.client.do(ctx, http.MethodPost, s.client.timetrackingPath("time_entries"), nil, map[string]interface{}{"time_entry": params})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create time entry")
	}
	return decodeOne[TimeEntry](raw, "time_entry")
}

// Update updates an existing time entry
func (s *timeEntryService) Update(ctx context.Context, timeEntryID int64, params *TimeEntryParams) (*TimeEntry, error) {
	if params == nil {
		params = &TimeEntryParams{}
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.timetrackingPath("time_entries/%d", timeEntryID), nil, map[string]interface{}{"time_entry": params})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update time entry %d", timeEntryID)
	}
	return decodeOne[TimeEntry](raw, "time_entry")
}

// Delete deletes a time entry
func (s *timeEntryService) Delete(ctx context.Context, timeEntryID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.timetrackingPath("time_entries/%d", timeEntryID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete time entry %d", timeEntryID)
	}
	return nil
}

// StartTimer creates an unlogged entry starting now
func (s *timeEntryService) StartTimer(ctx context.Context, projectID int64, note string) (*TimeEntry, error) {
	return s.Create(ctx, &TimeEntryParams{
		ProjectID: projectID,
		IsLogged:  Bool(false),
		StartedAt: s.client.now().UTC().Format(time.RFC3339),
		Note:      note,
	})
}

// StopTimer logs a running entry
func (s *timeEntryService) StopTimer(ctx context.Context, timeEntryID int64) (*TimeEntry, error) {
	return s.Update(ctx, timeEntryID, &TimeEntryParams{IsLogged: Bool(true)})
}
