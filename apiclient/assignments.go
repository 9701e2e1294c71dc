package apiclient

import (
	"context"
	"net/http"

	"lms/dto"
)

// ListAssignments treats a 404 as "no assignments yet".
func (c *Client) ListAssignments(ctx context.Context, courseID string) ([]dto.Assignment, error) {
	var assignments []dto.Assignment
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/courses/{courseId}/assignments",
		pathParams: map[string]string{"courseId": courseID},
	}, &assignments)
	if IsNotFound(err) {
		return []dto.Assignment{}, nil
	}
	return assignments, err
}

func (c *Client) CreateAssignment(ctx context.Context, courseID string, a dto.Assignment) (*dto.Assignment, error) {
	var created dto.Assignment
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/courses/{courseId}/assignments",
		pathParams: map[string]string{"courseId": courseID},
		body:       a,
		auth:       true,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAssignment(ctx context.Context, courseID, assignmentID string, a dto.Assignment) (*dto.Assignment, error) {
	var updated dto.Assignment
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/courses/{courseId}/assignments/{assignmentId}",
		pathParams: map[string]string{"courseId": courseID, "assignmentId": assignmentID},
		body:       a,
		auth:       true,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAssignment(ctx context.Context, courseID, assignmentID string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "/courses/{courseId}/assignments/{assignmentId}",
		pathParams: map[string]string{"courseId": courseID, "assignmentId": assignmentID},
		auth:       true,
	}, nil)
}
