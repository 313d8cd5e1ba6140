package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TimeEntryIDInput struct {
	TimeEntryID int64 `json:"time_entry_id" jsonschema:"Time entry ID"`
}

type CreateTimeEntryInput struct {
	ProjectID int64  `json:"project_id" jsonschema:"Project ID"`
	ClientID  int64  `json:"client_id,omitempty" jsonschema:"Client ID"`
	Duration  int64  `json:"duration" jsonschema:"Duration in seconds"`
	StartedAt string `json:"started_at" jsonschema:"Start time (ISO 8601)"`
	Note      string `json:"note,omitempty" jsonschema:"Note describing the work"`
	Billable  *bool  `json:"billable,omitempty" jsonschema:"Whether the time is billable"`
	Internal  *bool  `json:"internal,omitempty" jsonschema:"Whether the time is internal"`
}

type UpdateTimeEntryInput struct {
	TimeEntryID int64  `json:"time_entry_id" jsonschema:"Time entry ID to update"`
	Duration    *int64 `json:"duration,omitempty" jsonschema:"Duration in seconds"`
	Note        string `json:"note,omitempty" jsonschema:"Note describing the work"`
	Billable    *bool  `json:"billable,omitempty" jsonschema:"Whether the time is billable"`
}

type StartTimerInput struct {
	ProjectID int64  `json:"project_id" jsonschema:"Project ID to track time against"`
	Note      string `json:"note,omitempty" jsonschema:"Note describing the work"`
}

func (t *freshbooksTools) registerTimeEntryTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_time_entries", "List time entries with pagination", t.ListTimeEntries)
	addTool(server, "freshbooks_get_time_entry", "Get details of a specific time entry by ID", t.GetTimeEntry)
	addTool(server, "freshbooks_create_time_entry", "Log a new time entry", t.CreateTimeEntry)
	addTool(server, "freshbooks_update_time_entry", "Update an existing time entry", t.UpdateTimeEntry)
	addTool(server, "freshbooks_delete_time_entry", "Delete a time entry", t.DeleteTimeEntry)
	addTool(server, "freshbooks_start_timer", "Start a timer for a project", t.StartTimer)
	addTool(server, "freshbooks_stop_timer", "Stop a running timer and log the time", t.StopTimer)
}

func (t *freshbooksTools) ListTimeEntries(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.TimeEntries.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetTimeEntry(ctx context.Context, req *mcp.CallToolRequest, in TimeEntryIDInput) (*mcp.CallToolResult, any, error) {
	entry, err := t.client.TimeEntries.Get(ctx, in.TimeEntryID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}

func (t *freshbooksTools) CreateTimeEntry(ctx context.Context, req *mcp.CallToolRequest, in CreateTimeEntryInput) (*mcp.CallToolResult, any, error) {
	duration := in.Duration
	entry, err := t.client.TimeEntries.Create(ctx, &freshbooks.TimeEntryParams{
		ProjectID: in.ProjectID,
		ClientID:  in.ClientID,
		Duration:  &duration,
		StartedAt: in.StartedAt,
		Note:      in.Note,
		Billable:  in.Billable,
		Internal:  in.Internal,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}

func (t *freshbooksTools) UpdateTimeEntry(ctx context.Context, req *mcp.CallToolRequest, in UpdateTimeEntryInput) (*mcp.CallToolResult, any, error) {
	entry, err := t.client.TimeEntries.Update(ctx, in.TimeEntryID, &freshbooks.TimeEntryParams{
		Duration: in.Duration,
		Note:     in.Note,
		Billable: in.Billable,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}

func (t *freshbooksTools) DeleteTimeEntry(ctx context.Context, req *mcp.CallToolRequest, in TimeEntryIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.TimeEntries.Delete(ctx, in.TimeEntryID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Time entry %d deleted successfully", in.TimeEntryID)
}

func (t *freshbooksTools) StartTimer(ctx context.Context, req *mcp.CallToolRequest, in StartTimerInput) (*mcp.CallToolResult, any, error) {
	entry, err := t.client.TimeEntries.StartTimer(ctx, in.ProjectID, in.Note)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}

func (t *freshbooksTools) StopTimer(ctx context.Context, req *mcp.CallToolRequest, in TimeEntryIDInput) (*mcp.CallToolResult, any, error) {
	entry, err := t.client.TimeEntries.StopTimer(ctx, in.TimeEntryID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}
