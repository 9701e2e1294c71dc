package authoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrMinOptions         = errors.New("a question needs at least 2 options")
	ErrUnknownOption      = errors.New("correct answer must match one of the options")
	ErrNotMultipleChoice  = errors.New("only multiple-choice questions have options")
	ErrNotConfirmed       = errors.New("action not confirmed")
	ErrUnknownSection     = errors.New("section not found")
	ErrUnknownModule      = errors.New("module not found")
	ErrSectionChange      = errors.New("a saved module cannot move to another section")
	ErrUnknownContentType = errors.New("content type must be video, pdf or quiz")
	ErrUnknownSurveyType  = errors.New("survey type must be text, rating or multiple-choice")
	ErrUnknownSubmission  = errors.New("submission type must be text, file_upload or link")
	ErrDraftCourse        = errors.New("course has not been saved yet")
	ErrNotSaved           = errors.New("nothing saved to delete")
)

// ValidationError is a client-side validation failure. It is reported
// before any network call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// orNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ReloadError reports that a write went through but the outline could not be
// re-fetched afterwards. The in-memory outline is stale until the next Load.
type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string { return "saved, but " + e.Err.Error() }
func (e *ReloadError) Unwrap() error { return e.Err }

// IsReload reports whether err only failed on the re-fetch after a write.
func IsReload(err error) bool {
	var re *ReloadError
	return errors.As(err, &re)
}
