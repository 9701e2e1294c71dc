package apiclient

import (
	"context"
	"net/http"

	"lms/dto"
)

func (c *Client) Notify(ctx context.Context, n dto.Notification) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/notifications", body: n, auth: true}, nil)
}

func (c *Client) EnrollAll(ctx context.Context, courseID string) (*dto.EnrollmentResult, error) {
	var result dto.EnrollmentResult
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/enrollments/enroll-all/{courseId}",
		pathParams: map[string]string{"courseId": courseID},
		auth:       true,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) EnrollUsers(ctx context.Context, courseID string, userIDs []string) (*dto.EnrollmentResult, error) {
	var result dto.EnrollmentResult
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/enrollments/enroll-users/{courseId}",
		pathParams: map[string]string{"courseId": courseID},
		body:       dto.EnrollUsersInput{UserIDs: userIDs},
		auth:       true,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	if err := c.do(ctx, call{method: http.MethodGet, path: "/admin/dashboard/stats", auth: true}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
