package authoring

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"lms/dto"
)

// SourceMode selects how a video or pdf module gets its content.
type SourceMode string

const (
	SourceFile SourceMode = "file"
	SourceURL  SourceMode = "url"
)

// ModuleEditor builds or edits one module of a section.
//
// Switching the content type is destructive unless the editor was created
// with WithPreserveOnTypeSwitch(true): leaving quiz discards the questions,
// leaving video or pdf discards the pending file and URL.
type ModuleEditor struct {
	Title       string
	Description string
	Objectives  []string
	Materials   *MaterialList

	courseID  string
	sectionID string
	moduleID  string

	contentType dto.ContentType
	mode        SourceMode
	file        *dto.UploadFile
	url         string
	// uploaded is the reference of file once its upload went through.
	uploaded    string
	quiz        quizDraft
	survey      surveyDraft

	preserveOnTypeSwitch bool

	store    ModuleStore
	uploader Uploader
}

type ModuleOption func(*ModuleEditor)

// WithPreserveOnTypeSwitch keeps type-specific drafts when the content type
// changes. They are still excluded from the payload of other types.
func WithPreserveOnTypeSwitch(preserve bool) ModuleOption {
	return func(e *ModuleEditor) { e.preserveOnTypeSwitch = preserve }
}

// NewModuleEditor opens an empty video module draft in file mode.
func NewModuleEditor(courseID string, store ModuleStore, uploader Uploader, opts ...ModuleOption) *ModuleEditor {
	e := &ModuleEditor{
		courseID:    courseID,
		contentType: dto.ContentVideo,
		mode:        SourceFile,
		store:       store,
		uploader:    uploader,
		Materials:   NewMaterialList(uploader),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadModuleEditor hydrates an editor from a persisted module. The stored
// content reference is edited in URL mode.
func LoadModuleEditor(courseID, sectionID string, m dto.Module, store ModuleStore, uploader Uploader, opts ...ModuleOption) *ModuleEditor {
	e := NewModuleEditor(courseID, store, uploader, opts...)
	e.sectionID = sectionID
	e.moduleID = m.ID
	e.Title = m.Title
	e.Description = m.Description
	e.Objectives = append([]string(nil), m.Objectives...)
	e.Materials = NewMaterialList(uploader, m.Materials...)
	if m.Type.Valid() {
		e.contentType = m.Type
	}
	if m.ContentURL != "" {
		e.mode = SourceURL
		e.url = m.ContentURL
	}
	if m.Quiz != nil {
		e.quiz.questions = append([]dto.QuizQuestion(nil), m.Quiz.Questions...)
		e.quiz.questions = e.quiz.snapshot()
	}
	if m.Survey != nil {
		e.survey.questions = append([]dto.SurveyQuestion(nil), m.Survey.Questions...)
		e.survey.questions = e.survey.snapshot()
	}
	return e
}

func (e *ModuleEditor) ID() string                   { return e.moduleID }
func (e *ModuleEditor) ContentType() dto.ContentType { return e.contentType }
func (e *ModuleEditor) SourceMode() SourceMode       { return e.mode }
func (e *ModuleEditor) URL() string                  { return e.url }
func (e *ModuleEditor) PendingFile() *dto.UploadFile { return e.file }

// SetContentType switches the module between video, pdf and quiz.
func (e *ModuleEditor) SetContentType(t dto.ContentType) error {
	if !t.Valid() {
		return ErrUnknownContentType
	}
	if t == e.contentType {
		return nil
	}
	if !e.preserveOnTypeSwitch {
		if e.contentType == dto.ContentQuiz {
			e.quiz = quizDraft{}
		}
		if e.contentType.HasMedia() {
			e.file = nil
			e.url = ""
		}
	}
	// video and pdf upload to different categories
	e.uploaded = ""
	e.contentType = t
	return nil
}

// SetSourceMode toggles between file and URL input. Only the active input
// counts toward validation and the payload.
func (e *ModuleEditor) SetSourceMode(mode SourceMode) {
	if mode == SourceFile || mode == SourceURL {
		e.mode = mode
	}
}

// SelectFile stages a local file for upload on save and activates file mode.
func (e *ModuleEditor) SelectFile(f dto.UploadFile) {
	e.file = &f
	e.uploaded = ""
	e.mode = SourceFile
}

// SetURL records a remote content URL and activates URL mode.
func (e *ModuleEditor) SetURL(url string) {
	e.url = url
	e.mode = SourceURL
}

// Quiz sub-editor.

func (e *ModuleEditor) AddQuestion() int                     { return e.quiz.add() }
func (e *ModuleEditor) RemoveQuestion(i int) error           { return e.quiz.remove(i) }
func (e *ModuleEditor) SetQuestionText(i int, t string) error { return e.quiz.setText(i, t) }
func (e *ModuleEditor) SetOption(i, j int, text string) error { return e.quiz.setOption(i, j, text) }
func (e *ModuleEditor) AddOption(i int) error                { return e.quiz.addOption(i) }
func (e *ModuleEditor) RemoveOption(i, j int) error          { return e.quiz.removeOption(i, j) }

func (e *ModuleEditor) SetCorrectAnswer(i int, option string) error {
	return e.quiz.setCorrect(i, option)
}

// Questions returns a copy of the quiz questions.
func (e *ModuleEditor) Questions() []dto.QuizQuestion { return e.quiz.snapshot() }

// Survey sub-editor.

func (e *ModuleEditor) AddSurveyQuestion() int                     { return e.survey.add() }
func (e *ModuleEditor) RemoveSurveyQuestion(i int) error           { return e.survey.remove(i) }
func (e *ModuleEditor) SetSurveyText(i int, t string) error        { return e.survey.setText(i, t) }
func (e *ModuleEditor) SetSurveyType(i int, t dto.SurveyType) error { return e.survey.setType(i, t) }
func (e *ModuleEditor) AddSurveyOption(i int) error                { return e.survey.addOption(i) }
func (e *ModuleEditor) RemoveSurveyOption(i, j int) error          { return e.survey.removeOption(i, j) }

func (e *ModuleEditor) SetSurveyOption(i, j int, text string) error {
	return e.survey.setOption(i, j, text)
}

func (e *ModuleEditor) SurveyQuestions() []dto.SurveyQuestion { return e.survey.snapshot() }

type moduleDraft struct {
	Title string          `json:"title" validate:"required"`
	Type  dto.ContentType `json:"type" validate:"required,oneof=video pdf quiz"`
}

// Validate reports what blocks Save: a title, for video or pdf either a
// staged file (file mode) or a non-empty URL (URL mode), and for quiz a
// correct answer on every question that matches one of its options.
func (e *ModuleEditor) Validate() error {
	verr := &ValidationError{}
	check(verr, moduleDraft{Title: strings.TrimSpace(e.Title), Type: e.contentType})
	if e.contentType == dto.ContentQuiz {
		for i, qq := range e.quiz.questions {
			if strings.TrimSpace(qq.CorrectAnswer) == "" || !containsOption(nonBlank(qq.Options), qq.CorrectAnswer) {
				verr.add(fmt.Sprintf("quiz.questions[%d].correctAnswer", i), "Please select the correct answer!")
			}
		}
	}
	if e.contentType.HasMedia() {
		switch e.mode {
		case SourceFile:
			if e.file == nil && e.uploaded == "" {
				verr.add("file", "Please select a file to upload!")
			}
		default:
			if strings.TrimSpace(e.url) == "" {
				verr.add("contentUrl", "Content URL is required!")
			}
		}
	}
	return verr.orNil()
}

func (e *ModuleEditor) CanSave() bool { return e.Validate() == nil }

// Payload builds the request body for contentURL. Quiz data is only sent for
// quiz modules; the survey is sent for any type when it has questions.
func (e *ModuleEditor) Payload(contentURL string) dto.ModuleInput {
	in := dto.ModuleInput{
		Title:       strings.TrimSpace(e.Title),
		Description: strings.TrimSpace(e.Description),
		Objectives:  nonBlank(e.Objectives),
		Type:        e.contentType,
		Survey:      e.survey.payload(),
		Materials:   e.Materials.Items(),
	}
	if e.contentType.HasMedia() {
		in.ContentURL = contentURL
	}
	if e.contentType == dto.ContentQuiz {
		in.Quiz = e.quiz.payload()
	}
	return in
}

// Save uploads a staged file (if any), then creates or updates the module
// under sectionID. A saved module stays in its section: passing another
// section returns ErrSectionChange. Any failure leaves the draft usable for
// a retry, and a file that was already uploaded is not sent again.
func (e *ModuleEditor) Save(ctx context.Context, sectionID string) (*dto.Module, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.moduleID != "" && e.sectionID != sectionID {
		return nil, ErrSectionChange
	}

	var contentURL string
	if e.contentType.HasMedia() {
		if e.mode == SourceFile {
			if e.uploaded == "" {
				url, err := e.upload(ctx)
				if err != nil {
					return nil, err
				}
				e.uploaded = url
			}
			contentURL = e.uploaded
		} else {
			contentURL = strings.TrimSpace(e.url)
		}
	}

	in := e.Payload(contentURL)
	var (
		saved *dto.Module
		err   error
	)
	if e.moduleID == "" {
		saved, err = e.store.CreateModule(ctx, e.courseID, sectionID, in)
	} else {
		saved, err = e.store.UpdateModule(ctx, e.courseID, sectionID, e.moduleID, in)
	}
	if err != nil {
		return nil, errors.Wrap(err, "save module")
	}

	e.moduleID = saved.ID
	e.sectionID = sectionID
	if e.contentType.HasMedia() && e.mode == SourceFile {
		// the upload is done; further saves reuse its reference
		e.file = nil
		e.uploaded = ""
		e.mode = SourceURL
		e.url = contentURL
	}
	return saved, nil
}

func (e *ModuleEditor) upload(ctx context.Context) (string, error) {
	f := *e.file
	// rewind readers a failed attempt may have drained
	if s, ok := f.Content.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return "", errors.Wrapf(err, "rewind %q", f.Name)
		}
	}
	res, err := e.uploader.Upload(ctx, uploadCategory(e.contentType), f)
	if err != nil {
		return "", errors.Wrapf(err, "upload %q", f.Name)
	}
	return res.URL, nil
}

func uploadCategory(t dto.ContentType) dto.UploadCategory {
	if t == dto.ContentPDF {
		return dto.UploadDocument
	}
	return dto.UploadVideo
}
