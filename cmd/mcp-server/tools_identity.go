package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (t *freshbooksTools) registerIdentityTools(server *mcp.Server) {
	addTool(server, "freshbooks_get_current_user", "Get the authenticated user and their business memberships", t.GetCurrentUser)
}

func (t *freshbooksTools) GetCurrentUser(ctx context.Context, req *mcp.CallToolRequest, in NoInput) (*mcp.CallToolResult, any, error) {
	me, err := t.client.Identity.Me(ctx)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(me)
}
