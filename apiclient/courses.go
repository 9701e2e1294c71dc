package apiclient

import (
	"context"
	"net/http"

	"lms/dto"
)

func (c *Client) ListCourses(ctx context.Context) ([]dto.Course, error) {
	var courses []dto.Course
	err := c.do(ctx, call{method: http.MethodGet, path: "/courses"}, &courses)
	if IsNotFound(err) {
		return []dto.Course{}, nil
	}
	return courses, err
}

func (c *Client) GetCourse(ctx context.Context, courseID string) (*dto.Course, error) {
	var course dto.Course
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/courses/{courseId}",
		pathParams: map[string]string{"courseId": courseID},
	}, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, course dto.Course) (*dto.Course, error) {
	var created dto.Course
	if err := c.do(ctx, call{method: http.MethodPost, path: "/courses", body: course, auth: true}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCourse(ctx context.Context, courseID string, update dto.CourseUpdate) (*dto.Course, error) {
	var course dto.Course
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/courses/{courseId}",
		pathParams: map[string]string{"courseId": courseID},
		body:       update,
		auth:       true,
	}, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, courseID string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "/courses/{courseId}",
		pathParams: map[string]string{"courseId": courseID},
		auth:       true,
	}, nil)
}
