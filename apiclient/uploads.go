package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"lms/dto"
)

// Upload sends file to POST /uploads/{category} as multipart field "file".
func (c *Client) Upload(ctx context.Context, category dto.UploadCategory, file dto.UploadFile) (*dto.UploadResult, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown upload category %q", category)
	}
	if file.Content == nil {
		return nil, fmt.Errorf("upload %q: no content", file.Name)
	}
	var result dto.UploadResult
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/uploads/{category}",
		pathParams: map[string]string{"category": string(category)},
		file:       &file,
		auth:       true,
	}, &result)
	if err != nil {
		return nil, err
	}
	if result.URL == "" {
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: "Upload response did not include a URL!"}
	}
	if result.Name == "" {
		result.Name = file.Name
	}
	return &result, nil
}
