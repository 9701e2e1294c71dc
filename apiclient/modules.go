package apiclient

import (
	"context"
	"net/http"

	"lms/dto"
)

func modulePath(courseID, sectionID string) (string, map[string]string) {
	return "/courses/{courseId}/sections/{sectionId}/modules",
		map[string]string{"courseId": courseID, "sectionId": sectionID}
}

func (c *Client) ListModules(ctx context.Context, courseID, sectionID string) ([]dto.Module, error) {
	path, params := modulePath(courseID, sectionID)
	var modules []dto.Module
	err := c.do(ctx, call{method: http.MethodGet, path: path, pathParams: params}, &modules)
	if IsNotFound(err) {
		return []dto.Module{}, nil
	}
	return modules, err
}

func (c *Client) GetModule(ctx context.Context, courseID, sectionID, moduleID string) (*dto.Module, error) {
	path, params := modulePath(courseID, sectionID)
	params["moduleId"] = moduleID
	var module dto.Module
	if err := c.do(ctx, call{method: http.MethodGet, path: path + "/{moduleId}", pathParams: params}, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) CreateModule(ctx context.Context, courseID, sectionID string, in dto.ModuleInput) (*dto.Module, error) {
	path, params := modulePath(courseID, sectionID)
	var module dto.Module
	if err := c.do(ctx, call{method: http.MethodPost, path: path, pathParams: params, body: in, auth: true}, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) UpdateModule(ctx context.Context, courseID, sectionID, moduleID string, in dto.ModuleInput) (*dto.Module, error) {
	path, params := modulePath(courseID, sectionID)
	params["moduleId"] = moduleID
	var module dto.Module
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       path + "/{moduleId}",
		pathParams: params,
		body:       in,
		auth:       true,
	}, &module)
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) DeleteModule(ctx context.Context, courseID, sectionID, moduleID string) error {
	path, params := modulePath(courseID, sectionID)
	params["moduleId"] = moduleID
	return c.do(ctx, call{method: http.MethodDelete, path: path + "/{moduleId}", pathParams: params, auth: true}, nil)
}
