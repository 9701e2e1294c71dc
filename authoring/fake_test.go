package authoring

import (
	"context"
	"fmt"
	"io"
	"sync"

	"lms/dto"
)

// fakeAPI is an in-memory backend that counts every call it receives.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
	seq   int

	course      dto.Course
	sections    []dto.Section
	assignments []dto.Assignment
	submissions []dto.Submission
	notified    []dto.Notification
	uploads     []dto.UploadCategory
	uploadSizes []int
	uploadName  string
}

var _ API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:  make(map[string]int),
		fail:   make(map[string]error),
		course: dto.Course{ID: "course-1", Title: "Go Basics"},
	}
}

func (f *fakeAPI) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.fail[name]
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

// Upload drains the file content like a real multipart request, even when
// the call is set to fail.
func (f *fakeAPI) Upload(_ context.Context, category dto.UploadCategory, file dto.UploadFile) (*dto.UploadResult, error) {
	size := 0
	if file.Content != nil {
		b, err := io.ReadAll(file.Content)
		if err != nil {
			return nil, err
		}
		size = len(b)
	}
	f.uploadSizes = append(f.uploadSizes, size)
	if err := f.hit("Upload"); err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, category)
	name := file.Name
	if f.uploadName != "" {
		name = f.uploadName
	}
	return &dto.UploadResult{URL: "/uploads/" + string(category) + "s/" + file.Name, Name: name, Type: "raw"}, nil
}

func (f *fakeAPI) ListSections(context.Context, string) ([]dto.Section, error) {
	if err := f.hit("ListSections"); err != nil {
		return nil, err
	}
	out := make([]dto.Section, len(f.sections))
	for i, s := range f.sections {
		out[i] = s
		out[i].Modules = append([]dto.Module(nil), s.Modules...)
	}
	return out, nil
}

func (f *fakeAPI) CreateSection(_ context.Context, courseID string, in dto.SectionInput) (*dto.Section, error) {
	if err := f.hit("CreateSection"); err != nil {
		return nil, err
	}
	s := dto.Section{ID: f.nextID("section"), CourseID: courseID, Title: in.Title, Description: in.Description}
	f.sections = append(f.sections, s)
	return &s, nil
}

func (f *fakeAPI) section(id string) *dto.Section {
	for i := range f.sections {
		if f.sections[i].ID == id {
			return &f.sections[i]
		}
	}
	return nil
}

func (f *fakeAPI) UpdateSection(_ context.Context, _, sectionID string, in dto.SectionInput) (*dto.Section, error) {
	if err := f.hit("UpdateSection"); err != nil {
		return nil, err
	}
	s := f.section(sectionID)
	if s == nil {
		return nil, ErrUnknownSection
	}
	s.Title, s.Description = in.Title, in.Description
	out := *s
	return &out, nil
}

func (f *fakeAPI) DeleteSection(_ context.Context, _, sectionID string) error {
	if err := f.hit("DeleteSection"); err != nil {
		return err
	}
	for i := range f.sections {
		if f.sections[i].ID == sectionID {
			f.sections = append(f.sections[:i], f.sections[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSection
}

func moduleFromInput(id, sectionID string, in dto.ModuleInput) dto.Module {
	return dto.Module{
		ID: id, SectionID: sectionID, Title: in.Title, Description: in.Description,
		Objectives: in.Objectives, Type: in.Type, ContentURL: in.ContentURL,
		Quiz: in.Quiz, Survey: in.Survey, Materials: in.Materials,
	}
}

func (f *fakeAPI) CreateModule(_ context.Context, _, sectionID string, in dto.ModuleInput) (*dto.Module, error) {
	if err := f.hit("CreateModule"); err != nil {
		return nil, err
	}
	s := f.section(sectionID)
	if s == nil {
		return nil, ErrUnknownSection
	}
	m := moduleFromInput(f.nextID("module"), sectionID, in)
	s.Modules = append(s.Modules, m)
	return &m, nil
}

func (f *fakeAPI) UpdateModule(_ context.Context, _, sectionID, moduleID string, in dto.ModuleInput) (*dto.Module, error) {
	if err := f.hit("UpdateModule"); err != nil {
		return nil, err
	}
	s := f.section(sectionID)
	if s == nil {
		return nil, ErrUnknownSection
	}
	for i := range s.Modules {
		if s.Modules[i].ID == moduleID {
			s.Modules[i] = moduleFromInput(moduleID, sectionID, in)
			m := s.Modules[i]
			return &m, nil
		}
	}
	return nil, ErrUnknownModule
}

func (f *fakeAPI) DeleteModule(_ context.Context, _, sectionID, moduleID string) error {
	if err := f.hit("DeleteModule"); err != nil {
		return err
	}
	s := f.section(sectionID)
	if s == nil {
		return ErrUnknownSection
	}
	for i := range s.Modules {
		if s.Modules[i].ID == moduleID {
			s.Modules = append(s.Modules[:i], s.Modules[i+1:]...)
			return nil
		}
	}
	return ErrUnknownModule
}

func (f *fakeAPI) GetCourse(context.Context, string) (*dto.Course, error) {
	if err := f.hit("GetCourse"); err != nil {
		return nil, err
	}
	c := f.course
	return &c, nil
}

func (f *fakeAPI) UpdateCourse(_ context.Context, _ string, u dto.CourseUpdate) (*dto.Course, error) {
	if err := f.hit("UpdateCourse"); err != nil {
		return nil, err
	}
	if u.IsPublic != nil {
		f.course.IsPublic = *u.IsPublic
	}
	if u.ProjectSet {
		f.course.Project = u.Project
	}
	c := f.course
	return &c, nil
}

func (f *fakeAPI) CreateAssignment(_ context.Context, courseID string, a dto.Assignment) (*dto.Assignment, error) {
	if err := f.hit("CreateAssignment"); err != nil {
		return nil, err
	}
	a.ID, a.CourseID = f.nextID("assignment"), courseID
	f.assignments = append(f.assignments, a)
	return &a, nil
}

func (f *fakeAPI) UpdateAssignment(_ context.Context, courseID, assignmentID string, a dto.Assignment) (*dto.Assignment, error) {
	if err := f.hit("UpdateAssignment"); err != nil {
		return nil, err
	}
	for i := range f.assignments {
		if f.assignments[i].ID == assignmentID {
			a.ID, a.CourseID = assignmentID, courseID
			f.assignments[i] = a
			return &a, nil
		}
	}
	return nil, ErrNotSaved
}

func (f *fakeAPI) DeleteAssignment(_ context.Context, _, assignmentID string) error {
	if err := f.hit("DeleteAssignment"); err != nil {
		return err
	}
	for i := range f.assignments {
		if f.assignments[i].ID == assignmentID {
			f.assignments = append(f.assignments[:i], f.assignments[i+1:]...)
			return nil
		}
	}
	return ErrNotSaved
}

func (f *fakeAPI) ListSubmissions(context.Context, string) ([]dto.Submission, error) {
	if err := f.hit("ListSubmissions"); err != nil {
		return nil, err
	}
	return append([]dto.Submission(nil), f.submissions...), nil
}

func (f *fakeAPI) ListProjectSubmissions(context.Context, string) ([]dto.Submission, error) {
	if err := f.hit("ListProjectSubmissions"); err != nil {
		return nil, err
	}
	return append([]dto.Submission(nil), f.submissions...), nil
}

func (f *fakeAPI) GradeSubmission(_ context.Context, submissionID string, in dto.GradeInput) (*dto.Submission, error) {
	if err := f.hit("GradeSubmission"); err != nil {
		return nil, err
	}
	grade := in.Grade
	return &dto.Submission{ID: submissionID, Grade: &grade, Feedback: in.Feedback}, nil
}

func (f *fakeAPI) Notify(_ context.Context, n dto.Notification) error {
	if err := f.hit("Notify"); err != nil {
		return err
	}
	f.notified = append(f.notified, n)
	return nil
}

func (f *fakeAPI) EnrollAll(context.Context, string) (*dto.EnrollmentResult, error) {
	if err := f.hit("EnrollAll"); err != nil {
		return nil, err
	}
	return &dto.EnrollmentResult{Enrolled: 3}, nil
}

func (f *fakeAPI) EnrollUsers(_ context.Context, _ string, userIDs []string) (*dto.EnrollmentResult, error) {
	if err := f.hit("EnrollUsers"); err != nil {
		return nil, err
	}
	return &dto.EnrollmentResult{Enrolled: len(userIDs)}, nil
}
