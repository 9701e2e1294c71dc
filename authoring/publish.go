package authoring

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"lms/dto"
)

// PublishStore is what the publish controller needs from the backend.
type PublishStore interface {
	CourseStore
	Notifier
	Enroller
}

// Publisher controls a course's visibility and the bulk actions around it.
type Publisher struct {
	store PublishStore
	log   zerolog.Logger
	// LinkPrefix builds the notification link as LinkPrefix + course ID.
	LinkPrefix string
}

func NewPublisher(store PublishStore, log zerolog.Logger) *Publisher {
	return &Publisher{store: store, log: log, LinkPrefix: "/courses/"}
}

func (p *Publisher) setVisibility(ctx context.Context, courseID string, public bool) (*dto.Course, error) {
	if courseID == "" {
		return nil, ErrDraftCourse
	}
	updated, err := p.store.UpdateCourse(ctx, courseID, dto.CourseUpdate{IsPublic: &public})
	if err != nil {
		return nil, errors.Wrap(err, "update visibility")
	}
	return updated, nil
}

// ToggleVisibility flips course.IsPublic with a single-field update.
func (p *Publisher) ToggleVisibility(ctx context.Context, course dto.Course) (*dto.Course, error) {
	return p.setVisibility(ctx, course.ID, !course.IsPublic)
}

// Publish makes the course public. With notify set it then broadcasts a
// notification; a failed broadcast is logged and does not undo the publish.
func (p *Publisher) Publish(ctx context.Context, course dto.Course, notify bool) (*dto.Course, error) {
	updated, err := p.setVisibility(ctx, course.ID, true)
	if err != nil {
		return nil, err
	}
	if !notify {
		return updated, nil
	}
	title := strings.TrimSpace(course.Title)
	if updated != nil && updated.Title != "" {
		title = updated.Title
	}
	n := dto.Notification{
		Title:   "New course available",
		Message: title + " is now open for enrollment.",
		Link:    p.LinkPrefix + course.ID,
		Global:  true,
	}
	if err := p.store.Notify(ctx, n); err != nil {
		p.log.Warn().Err(err).Str("courseId", course.ID).Msg("publish notification failed")
	}
	return updated, nil
}

func (p *Publisher) EnrollAll(ctx context.Context, courseID string) (*dto.EnrollmentResult, error) {
	if courseID == "" {
		return nil, ErrDraftCourse
	}
	res, err := p.store.EnrollAll(ctx, courseID)
	return res, errors.Wrap(err, "enroll all")
}

// EnrollSome enrolls the given users. Blank IDs are ignored; an empty
// selection is a validation error.
func (p *Publisher) EnrollSome(ctx context.Context, courseID string, userIDs []string) (*dto.EnrollmentResult, error) {
	if courseID == "" {
		return nil, ErrDraftCourse
	}
	ids := nonBlank(userIDs)
	if len(ids) == 0 {
		verr := &ValidationError{}
		verr.add("userIds", "Select at least one user!")
		return nil, verr
	}
	res, err := p.store.EnrollUsers(ctx, courseID, ids)
	return res, errors.Wrap(err, "enroll users")
}
