package dto

// ContentType is the closed set of module content kinds.
type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentPDF   ContentType = "pdf"
	ContentQuiz  ContentType = "quiz"
)

// Valid reports whether t is video, pdf or quiz.
func (t ContentType) Valid() bool {
	return t == ContentVideo || t == ContentPDF || t == ContentQuiz
}

// HasMedia reports whether modules of this type carry a content reference.
func (t ContentType) HasMedia() bool {
	return t == ContentVideo || t == ContentPDF
}

// SurveyType is the answer kind of a survey question.
type SurveyType string

const (
	SurveyText           SurveyType = "text"
	SurveyRating         SurveyType = "rating"
	SurveyMultipleChoice SurveyType = "multiple-choice"
)

func (t SurveyType) Valid() bool {
	return t == SurveyText || t == SurveyRating || t == SurveyMultipleChoice
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

type SurveyQuestion struct {
	Question string     `json:"question"`
	Type     SurveyType `json:"type"`
	Options  []string   `json:"options,omitempty"`
}

type Survey struct {
	Questions []SurveyQuestion `json:"questions"`
}

// Module is the smallest learning unit within a section.
type Module struct {
	ID          string      `json:"id,omitempty"`
	SectionID   string      `json:"sectionId,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Objectives  []string    `json:"objectives"`
	Type        ContentType `json:"type"`
	ContentURL  string      `json:"contentUrl,omitempty"`
	Quiz        *Quiz       `json:"quiz,omitempty"`
	Survey      *Survey     `json:"survey,omitempty"`
	Materials   []Material  `json:"materials,omitempty"`
}

// ModuleInput is the create/update payload of a module.
type ModuleInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Objectives  []string    `json:"objectives"`
	Type        ContentType `json:"type"`
	ContentURL  string      `json:"contentUrl,omitempty"`
	Quiz        *Quiz       `json:"quiz,omitempty"`
	Survey      *Survey     `json:"survey,omitempty"`
	Materials   []Material  `json:"materials,omitempty"`
}
