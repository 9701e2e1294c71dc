package dto

import (
	"encoding/json"
	"io"
)

// UploadCategory selects the upload endpoint.
type UploadCategory string

const (
	UploadImage    UploadCategory = "image"
	UploadVideo    UploadCategory = "video"
	UploadDocument UploadCategory = "document"
	UploadMaterial UploadCategory = "material"
)

func (c UploadCategory) Valid() bool {
	switch c {
	case UploadImage, UploadVideo, UploadDocument, UploadMaterial:
		return true
	}
	return false
}

// UploadFile is a local file pending upload.
type UploadFile struct {
	Name    string
	Content io.Reader
}

// UploadResult is the reference returned by the upload endpoint. Providers
// disagree on key names, so both spellings are accepted on decode.
type UploadResult struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

func (r *UploadResult) UnmarshalJSON(b []byte) error {
	var raw struct {
		URL              string `json:"url"`
		SecureURL        string `json:"secure_url"`
		Name             string `json:"name"`
		OriginalFilename string `json:"original_filename"`
		Type             string `json:"type"`
		ResourceType     string `json:"resource_type"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.URL = firstNonEmpty(raw.URL, raw.SecureURL)
	r.Name = firstNonEmpty(raw.Name, raw.OriginalFilename)
	r.Type = firstNonEmpty(raw.Type, raw.ResourceType)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
