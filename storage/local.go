package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes files under Dir; they are served from BaseURL + "/uploads/".
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Put(_ context.Context, obj Object) (string, error) {
	filePath := filepath.Join(s.Dir, filepath.FromSlash(obj.Key))

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, obj.Body); err != nil {
		os.Remove(filePath)
		return "", err
	}
	return s.URL(obj.Key), nil
}

// URL is the public address of key.
func (s *LocalStore) URL(key string) string {
	return s.BaseURL + "/uploads/" + strings.TrimLeft(key, "/")
}
