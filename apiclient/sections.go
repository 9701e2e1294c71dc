package apiclient

import (
	"context"
	"net/http"

	"lms/dto"
)

// ListSections returns the course's sections in display order, with their
// modules. A course without sections yields an empty slice.
func (c *Client) ListSections(ctx context.Context, courseID string) ([]dto.Section, error) {
	var sections []dto.Section
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/courses/{courseId}/sections",
		pathParams: map[string]string{"courseId": courseID},
	}, &sections)
	if IsNotFound(err) {
		return []dto.Section{}, nil
	}
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []dto.Section{}
	}
	return sections, nil
}

func (c *Client) CreateSection(ctx context.Context, courseID string, in dto.SectionInput) (*dto.Section, error) {
	var section dto.Section
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/courses/{courseId}/sections",
		pathParams: map[string]string{"courseId": courseID},
		body:       in,
		auth:       true,
	}, &section)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) UpdateSection(ctx context.Context, courseID, sectionID string, in dto.SectionInput) (*dto.Section, error) {
	var section dto.Section
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/courses/{courseId}/sections/{sectionId}",
		pathParams: map[string]string{"courseId": courseID, "sectionId": sectionID},
		body:       in,
		auth:       true,
	}, &section)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) DeleteSection(ctx context.Context, courseID, sectionID string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "/courses/{courseId}/sections/{sectionId}",
		pathParams: map[string]string{"courseId": courseID, "sectionId": sectionID},
		auth:       true,
	}, nil)
}
