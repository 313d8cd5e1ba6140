package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PageInput is used by list tools that only paginate
type PageInput struct {
	Page    int `json:"page,omitempty" jsonschema:"Page number for pagination (default: 1)"`
	PerPage int `json:"per_page,omitempty" jsonschema:"Number of results per page (default: 30)"`
}

func (in *PageInput) options() *freshbooks.ListOptions {
	return &freshbooks.ListOptions{Page: in.Page, PerPage: in.PerPage}
}

type ProjectIDInput struct {
	ProjectID int64 `json:"project_id" jsonschema:"Project ID"`
}

type CreateProjectInput struct {
	Title         string   `json:"title" jsonschema:"Project title"`
	ClientID      int64    `json:"client_id" jsonschema:"Client ID"`
	Description   string   `json:"description,omitempty" jsonschema:"Project description"`
	DueDate       string   `json:"due_date,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
	BillingMethod string   `json:"billing_method,omitempty" jsonschema:"Billing method (e.g. project_rate, service_rate, team_member_rate)"`
	ProjectType   string   `json:"project_type,omitempty" jsonschema:"Project type (fixed_price or hourly_rate)"`
	Budget        *float64 `json:"budget,omitempty" jsonschema:"Budget in hours"`
	FixedPrice    *float64 `json:"fixed_price,omitempty" jsonschema:"Fixed price for fixed-price projects"`
	Rate          *float64 `json:"rate,omitempty" jsonschema:"Hourly rate"`
	Internal      *bool    `json:"internal,omitempty" jsonschema:"Whether the project is internal"`
}

type UpdateProjectInput struct {
	ProjectID   int64  `json:"project_id" jsonschema:"Project ID to update"`
	Title       string `json:"title,omitempty" jsonschema:"Project title"`
	Description string `json:"description,omitempty" jsonschema:"Project description"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
	Active      *bool  `json:"active,omitempty" jsonschema:"Whether the project is active"`
	Complete    *bool  `json:"complete,omitempty" jsonschema:"Whether the project is complete"`
}

func (t *freshbooksTools) registerProjectTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_projects", "List projects with pagination", t.ListProjects)
	addTool(server, "freshbooks_get_project", "Get details of a specific project by ID", t.GetProject)
	addTool(server, "freshbooks_create_project", "Create a new project", t.CreateProject)
	addTool(server, "freshbooks_update_project", "Update an existing project", t.UpdateProject)
	addTool(server, "freshbooks_delete_project", "Delete a project", t.DeleteProject)
	addTool(server, "freshbooks_mark_project_complete", "Mark a project as complete", t.MarkProjectComplete)
}

func (t *freshbooksTools) ListProjects(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Projects.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetProject(ctx context.Context, req *mcp.CallToolRequest, in ProjectIDInput) (*mcp.CallToolResult, any, error) {
	project, err := t.client.Projects.Get(ctx, in.ProjectID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(project)
}

func (t *freshbooksTools) CreateProject(ctx context.Context, req *mcp.CallToolRequest, in CreateProjectInput) (*mcp.CallToolResult, any, error) {
	project, err := t.client.Projects.Create(ctx, &freshbooks.ProjectParams{
		Title:         in.Title,
		ClientID:      in.ClientID,
		Description:   in.Description,
		DueDate:       in.DueDate,
		BillingMethod: in.BillingMethod,
		ProjectType:   in.ProjectType,
		Budget:        in.Budget,
		FixedPrice:    in.FixedPrice,
		Rate:          in.Rate,
		Internal:      in.Internal,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(project)
}

func (t *freshbooksTools) UpdateProject(ctx context.Context, req *mcp.CallToolRequest, in UpdateProjectInput) (*mcp.CallToolResult, any, error) {
	project, err := t.client.Projects.Update(ctx, in.ProjectID, &freshbooks.ProjectParams{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Active:      in.Active,
		Complete:    in.Complete,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(project)
}

func (t *freshbooksTools) DeleteProject(ctx context.Context, req *mcp.CallToolRequest, in ProjectIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Projects.Delete(ctx, in.ProjectID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Project %d deleted successfully", in.ProjectID)
}

func (t *freshbooksTools) MarkProjectComplete(ctx context.Context, req *mcp.CallToolRequest, in ProjectIDInput) (*mcp.CallToolResult, any, error) {
	project, err := t.client.Projects.MarkComplete(ctx, in.ProjectID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(project)
}
