package freshbooks

import (
	"context"

	"github.com/pkg/errors"
)

// staffService implements the StaffService interface
type staffService struct {
	client *Client
}

// List retrieves one page of staff members
func (s *staffService) List(ctx context.Context, opts *ListOptions) (*Page[StaffMember], error) {
	raw, err := s.client.get(ctx, s.client.projectsPath("staff"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}
	return decodePage[StaffMember](raw, "staff_members")
}

// Get retrieves a single staff member by ID
func (s *staffService) Get(ctx context.Context, staffID int64) (*StaffMember, error) {
	raw, err := s.client.get(ctx, s.client.projectsPath("staff/%d", staffID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get staff member %d", staffID)
	}
	return decodeOne[StaffMember](raw, "staff_member")
}
