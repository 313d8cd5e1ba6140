package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ClientIDInput struct {
	ClientID int64 `json:"client_id" jsonschema:"Client ID"`
}

// ClientFields are the writable client attributes
type ClientFields struct {
	FirstName     string `json:"fname,omitempty" jsonschema:"First name"`
	LastName      string `json:"lname,omitempty" jsonschema:"Last name"`
	Organization  string `json:"organization,omitempty" jsonschema:"Organization name"`
	BusinessPhone string `json:"business_phone,omitempty" jsonschema:"Business phone"`
	MobilePhone   string `json:"mobile_phone,omitempty" jsonschema:"Mobile phone"`
	HomePhone     string `json:"home_phone,omitempty" jsonschema:"Home phone"`
	Fax           string `json:"fax,omitempty" jsonschema:"Fax number"`
	CurrencyCode  string `json:"currency_code,omitempty" jsonschema:"Currency code (e.g. USD or CAD)"`
	Language      string `json:"language,omitempty" jsonschema:"Language code (e.g. en)"`
	Note          string `json:"note,omitempty" jsonschema:"Internal note"`
	VATName       string `json:"vat_name,omitempty" jsonschema:"VAT name"`
	VATNumber     string `json:"vat_number,omitempty" jsonschema:"VAT number"`
	SStreet       string `json:"s_street,omitempty" jsonschema:"Shipping street"`
	SStreet2      string `json:"s_street2,omitempty" jsonschema:"Shipping street line 2"`
	SCity         string `json:"s_city,omitempty" jsonschema:"Shipping city"`
	SProvince     string `json:"s_province,omitempty" jsonschema:"Shipping province or state"`
	SCode         string `json:"s_code,omitempty" jsonschema:"Shipping postal code"`
	SCountry      string `json:"s_country,omitempty" jsonschema:"Shipping country"`
	PStreet       string `json:"p_street,omitempty" jsonschema:"Billing street"`
	PStreet2      string `json:"p_street2,omitempty" jsonschema:"Billing street line 2"`
	PCity         string `json:"p_city,omitempty" jsonschema:"Billing city"`
	PProvince     string `json:"p_province,omitempty" jsonschema:"Billing province or state"`
	PCode         string `json:"p_code,omitempty" jsonschema:"Billing postal code"`
	PCountry      string `json:"p_country,omitempty" jsonschema:"Billing country"`
}

type CreateClientInput struct {
	Email string `json:"email" jsonschema:"Client email address"`
	ClientFields
}

type UpdateClientInput struct {
	ClientID int64  `json:"client_id" jsonschema:"Client ID to update"`
	Email    string `json:"email,omitempty" jsonschema:"Client email address"`
	ClientFields
}

func (f *ClientFields) params(email string) *freshbooks.ClientParams {
	return &freshbooks.ClientParams{
		Email:            email,
		FirstName:        f.FirstName,
		LastName:         f.LastName,
		Organization:     f.Organization,
		BusinessPhone:    f.BusinessPhone,
		MobilePhone:      f.MobilePhone,
		HomePhone:        f.HomePhone,
		Fax:              f.Fax,
		CurrencyCode:     f.CurrencyCode,
		Language:         f.Language,
		Note:             f.Note,
		VATName:          f.VATName,
		VATNumber:        f.VATNumber,
		ShippingStreet:   f.SStreet,
		ShippingStreet2:  f.SStreet2,
		ShippingCity:     f.SCity,
		ShippingProvince: f.SProvince,
		ShippingCode:     f.SCode,
		ShippingCountry:  f.SCountry,
		Street:           f.PStreet,
		Street2:          f.PStreet2,
		City:             f.PCity,
		Province:         f.PProvince,
		Code:             f.PCode,
		Country:          f.PCountry,
	}
}

func (t *freshbooksTools) registerClientTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_clients",
		"List all clients in FreshBooks with optional search and pagination. Set all to fetch every page.",
		t.ListClients)
	addTool(server, "freshbooks_get_client", "Get details of a specific client by ID", t.GetClient)
	addTool(server, "freshbooks_create_client", "Create a new client in FreshBooks", t.CreateClient)
	addTool(server, "freshbooks_update_client", "Update an existing client", t.UpdateClient)
	addTool(server, "freshbooks_delete_client", "Delete a client", t.DeleteClient)
	addTool(server, "freshbooks_search_clients", "Search for clients by name, email, or organization", t.SearchClients)
}

func (t *freshbooksTools) ListClients(ctx context.Context, req *mcp.CallToolRequest, in ListAllInput) (*mcp.CallToolResult, any, error) {
	if in.All {
		all, err := t.client.Clients.ListAll(ctx, in.options())
		if err != nil {
			return t.fail(req, err)
		}
		return t.ok(allPages(all))
	}

	page, err := t.client.Clients.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetClient(ctx context.Context, req *mcp.CallToolRequest, in ClientIDInput) (*mcp.CallToolResult, any, error) {
	c, err := t.client.Clients.Get(ctx, in.ClientID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(c)
}

func (t *freshbooksTools) CreateClient(ctx context.Context, req *mcp.CallToolRequest, in CreateClientInput) (*mcp.CallToolResult, any, error) {
	c, err := t.client.Clients.Create(ctx, in.params(in.Email))
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(c)
}

func (t *freshbooksTools) UpdateClient(ctx context.Context, req *mcp.CallToolRequest, in UpdateClientInput) (*mcp.CallToolResult, any, error) {
	c, err := t.client.Clients.Update(ctx, in.ClientID, in.params(in.Email))
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(c)
}

func (t *freshbooksTools) DeleteClient(ctx context.Context, req *mcp.CallToolRequest, in ClientIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Clients.Delete(ctx, in.ClientID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Client %d deleted successfully", in.ClientID)
}

func (t *freshbooksTools) SearchClients(ctx context.Context, req *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Clients.List(ctx, &freshbooks.ListOptions{Search: in.Query})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}
