package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// projectService implements the ProjectService interface
type projectService struct {
	client *Client
}

// List retrieves one page of projects
func (s *projectService) List(ctx context.Context, opts *ListOptions) (*Page[Project], error) {
	raw, err := s.client.get(ctx, s.client.projectsPath("projects"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}
	return decodePage[Project](raw, "projects")
}

// Get retrieves a single project by ID
func (s *projectService) Get(ctx context.Context, projectID int64) (*Project, error) {
	raw, err := s.client.get(ctx, s.client.projectsPath("project/%d", projectID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get project %d", projectID)
	}
	return decodeOne[Project](raw, "project")
}

// Create creates a new project
func (s *projectService) Create(ctx context.Context, params *ProjectParams) (*Project, error) {
	if params == nil || params.Title == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "project title is required")
	}

	raw, err := s.client.do(ctx, http.MethodPost, s.client.projectsPath("project"), nil, map[string]interface{}{"project": params})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}
	return decodeOne[Project](raw, "project")
}

// Update updates an existing project
func (s *projectService) Update(ctx context.Context, projectID int64, params *ProjectParams) (*Project, error) {
	if params == nil {
		params = &ProjectParams{}
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.projectsPath("project/%d", projectID), nil, map[string]interface{}{"project": params})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update project %d", projectID)
	}
	return decodeOne[Project](raw, "project")
}

// Delete deletes a project
func (s *projectService) Delete(ctx context.Context, projectID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.projectsPath("project/%d", projectID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete project %d", projectID)
	}
	return nil
}

// MarkComplete flags the project as complete
func (s *projectService) MarkComplete(ctx context.Context, projectID int64) (*Project, error) {
	return s.Update(ctx, projectID, &ProjectParams{Complete: Bool(true)})
}
