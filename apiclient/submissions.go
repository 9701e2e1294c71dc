package apiclient

import (
	"context"
	"net/http"

	"lms/dto"
)

func (c *Client) ListSubmissions(ctx context.Context, assignmentID string) ([]dto.Submission, error) {
	var submissions []dto.Submission
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/assignments/{assignmentId}/submissions",
		pathParams: map[string]string{"assignmentId": assignmentID},
		auth:       true,
	}, &submissions)
	if IsNotFound(err) {
		return []dto.Submission{}, nil
	}
	return submissions, err
}

// Submit posts a learner submission.
func (c *Client) Submit(ctx context.Context, assignmentID string, s dto.Submission) (*dto.Submission, error) {
	var created dto.Submission
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/assignments/{assignmentId}/submissions",
		pathParams: map[string]string{"assignmentId": assignmentID},
		body:       s,
		auth:       true,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListProjectSubmissions lists the submissions to a course's project.
func (c *Client) ListProjectSubmissions(ctx context.Context, courseID string) ([]dto.Submission, error) {
	var submissions []dto.Submission
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/courses/{courseId}/project/submissions",
		pathParams: map[string]string{"courseId": courseID},
		auth:       true,
	}, &submissions)
	if IsNotFound(err) {
		return []dto.Submission{}, nil
	}
	return submissions, err
}

// SubmitProject posts a learner submission to the course project.
func (c *Client) SubmitProject(ctx context.Context, courseID string, s dto.Submission) (*dto.Submission, error) {
	var created dto.Submission
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/courses/{courseId}/project/submissions",
		pathParams: map[string]string{"courseId": courseID},
		body:       s,
		auth:       true,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GradeSubmission(ctx context.Context, submissionID string, in dto.GradeInput) (*dto.Submission, error) {
	var graded dto.Submission
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/submissions/{submissionId}/grade",
		pathParams: map[string]string{"submissionId": submissionID},
		body:       in,
		auth:       true,
	}, &graded)
	if err != nil {
		return nil, err
	}
	return &graded, nil
}
