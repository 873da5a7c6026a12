package skybase

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/skybase/client-go/internal/api"
)

// CreateProjectParams describes a new project.
type CreateProjectParams struct {
	Name        string
	Description string
}

// Validate checks the params before any network I/O.
func (p CreateProjectParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Description, validation.Length(0, 2000)),
	)
}

// CreateProject creates a project and stores the returned API key on the
// client. The key is only ever returned here; persist it.
func (c *Client) CreateProject(ctx context.Context, params CreateProjectParams) (*CreatedProject, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	created, err := c.api.CreateProject(ctx, api.CreateProjectRequest{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return created, nil
}

// ListProjects returns all projects visible to the current credential.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	projects, err := c.api.ListProjects(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	project, err := c.api.GetProject(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return project, nil
}

// RegenerateAPIKey replaces the project's API key. The old key stops working
// immediately; the new one is stored on the client and returned.
func (c *Client) RegenerateAPIKey(ctx context.Context, projectID string) (string, error) {
	key, err := c.api.RegenerateAPIKey(ctx, projectID)
	if err != nil {
		return "", wrapError(err)
	}
	return key, nil
}
