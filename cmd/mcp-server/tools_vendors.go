package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VendorIDInput struct {
	VendorID int64 `json:"vendor_id" jsonschema:"Vendor ID"`
}

type CreateVendorInput struct {
	VendorName              string `json:"vendor_name" jsonschema:"Vendor name"`
	PrimaryContactEmail     string `json:"primary_contact_email" jsonschema:"Primary contact email"`
	PrimaryContactFirstName string `json:"primary_contact_first_name,omitempty" jsonschema:"Primary contact first name"`
	PrimaryContactLastName  string `json:"primary_contact_last_name,omitempty" jsonschema:"Primary contact last name"`
	Phone                   string `json:"phone,omitempty" jsonschema:"Phone number"`
	Website                 string `json:"website,omitempty" jsonschema:"Website URL"`
	Street                  string `json:"street,omitempty" jsonschema:"Street address"`
	City                    string `json:"city,omitempty" jsonschema:"City"`
	Province                string `json:"province,omitempty" jsonschema:"Province or state"`
	PostalCode              string `json:"postal_code,omitempty" jsonschema:"Postal code"`
	Country                 string `json:"country,omitempty" jsonschema:"Country"`
	CurrencyCode            string `json:"currency_code,omitempty" jsonschema:"Currency code"`
	Is1099                  *bool  `json:"is_1099,omitempty" jsonschema:"Whether the vendor receives a 1099"`
}

type UpdateVendorInput struct {
	VendorID            int64  `json:"vendor_id" jsonschema:"Vendor ID to update"`
	VendorName          string `json:"vendor_name,omitempty" jsonschema:"Vendor name"`
	PrimaryContactEmail string `json:"primary_contact_email,omitempty" jsonschema:"Primary contact email"`
	Phone               string `json:"phone,omitempty" jsonschema:"Phone number"`
	Street              string `json:"street,omitempty" jsonschema:"Street address"`
	City                string `json:"city,omitempty" jsonschema:"City"`
}

func (t *freshbooksTools) registerVendorTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_vendors", "List bill vendors with pagination", t.ListVendors)
	addTool(server, "freshbooks_get_vendor", "Get details of a specific vendor by ID", t.GetVendor)
	addTool(server, "freshbooks_create_vendor", "Create a new bill vendor", t.CreateVendor)
	addTool(server, "freshbooks_update_vendor", "Update an existing vendor", t.UpdateVendor)
	addTool(server, "freshbooks_delete_vendor", "Delete a vendor", t.DeleteVendor)
}

func (t *freshbooksTools) ListVendors(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Vendors.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetVendor(ctx context.Context, req *mcp.CallToolRequest, in VendorIDInput) (*mcp.CallToolResult, any, error) {
	vendor, err := t.client.Vendors.Get(ctx, in.VendorID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(vendor)
}

func (t *freshbooksTools) CreateVendor(ctx context.Context, req *mcp.CallToolRequest, in CreateVendorInput) (*mcp.CallToolResult, any, error) {
	vendor, err := t.client.Vendors.Create(ctx, &freshbooks.VendorParams{
		VendorName:              in.VendorName,
		PrimaryContactEmail:     in.PrimaryContactEmail,
		PrimaryContactFirstName: in.PrimaryContactFirstName,
		PrimaryContactLastName:  in.PrimaryContactLastName,
		Phone:                   in.Phone,
		Website:                 in.Website,
		Street:                  in.Street,
		City:                    in.City,
		Province:                in.Province,
		PostalCode:              in.PostalCode,
		Country:                 in.Country,
		CurrencyCode:            in.CurrencyCode,
		Is1099:                  in.Is1099,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(vendor)
}

func (t *freshbooksTools) UpdateVendor(ctx context.Context, req *mcp.CallToolRequest, in UpdateVendorInput) (*mcp.CallToolResult, any, error) {
	vendor, err := t.client.Vendors.Update(ctx, in.VendorID, &freshbooks.VendorParams{
		VendorName:          in.VendorName,
		PrimaryContactEmail: in.PrimaryContactEmail,
		Phone:               in.Phone,
		Street:              in.Street,
		City:                in.City,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(vendor)
}

func (t *freshbooksTools) DeleteVendor(ctx context.Context, req *mcp.CallToolRequest, in VendorIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Vendors.Delete(ctx, in.VendorID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Vendor %d deleted successfully", in.VendorID)
}
