package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type StaffIDInput struct {
	StaffID int64 `json:"staff_id" jsonschema:"Staff member ID"`
}

func (t *freshbooksTools) registerStaffTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_staff", "List team members with pagination", t.ListStaff)
	addTool(server, "freshbooks_get_staff_member", "Get details of a specific team member by ID", t.GetStaffMember)
}

func (t *freshbooksTools) ListStaff(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Staff.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetStaffMember(ctx context.Context, req *mcp.CallToolRequest, in StaffIDInput) (*mcp.CallToolResult, any, error) {
	member, err := t.client.Staff.Get(ctx, in.StaffID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(member)
}
