package authoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"lms/dto"
)

// Grader reviews the submissions of one assignment or project.
type Grader struct {
	assignment dto.Assignment
	project    bool
	store      GradeStore
}

func NewGrader(assignment dto.Assignment, store GradeStore) *Grader {
	return &Grader{assignment: assignment, store: store}
}

// NewProjectGrader reviews the project of project.CourseID.
func NewProjectGrader(project dto.Assignment, store GradeStore) *Grader {
	return &Grader{assignment: project, project: true, store: store}
}

func (g *Grader) MaxPoints() float64 { return g.assignment.EffectiveMaxPoints() }

// Queue returns the assignment's submissions with ungraded ones first,
// otherwise in the order the backend returned them.
func (g *Grader) Queue(ctx context.Context) ([]dto.Submission, error) {
	var (
		subs []dto.Submission
		err  error
	)
	if g.project {
		subs, err = g.store.ListProjectSubmissions(ctx, g.assignment.CourseID)
	} else {
		subs, err = g.store.ListSubmissions(ctx, g.assignment.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "list submissions")
	}
	queue := make([]dto.Submission, 0, len(subs))
	for _, s := range subs {
		if !s.IsGraded() {
			queue = append(queue, s)
		}
	}
	for _, s := range subs {
		if s.IsGraded() {
			queue = append(queue, s)
		}
	}
	return queue, nil
}

// CheckScore reports a ValidationError when score is outside 0..MaxPoints.
func (g *Grader) CheckScore(score float64) error {
	limit := g.MaxPoints()
	verr := &ValidationError{}
	if math.IsNaN(score) {
		verr.add("grade", "Grade must be a number!")
		return verr
	}
	if err := validate.Var(score, fmt.Sprintf("gte=0,lte=%g", limit)); err != nil {
		verr.add("grade", fmt.Sprintf("Grade must be between 0 and %g!", limit))
	}
	return verr.orNil()
}

// Grade records score and feedback. An out-of-range score is rejected
// without contacting the backend.
func (g *Grader) Grade(ctx context.Context, submissionID string, score float64, feedback string) (*dto.Submission, error) {
	if err := g.CheckScore(score); err != nil {
		return nil, err
	}
	s, err := g.store.GradeSubmission(ctx, submissionID, dto.GradeInput{
		Grade:    score,
		Feedback: strings.TrimSpace(feedback),
	})
	if err != nil {
		return nil, errors.Wrap(err, "grade submission")
	}
	return s, nil
}
