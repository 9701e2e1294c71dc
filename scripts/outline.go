package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"lms/authoring"
	"lms/dto"
)

// Outline is the YAML document the importer reads.
type Outline struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Category    dto.Category     `yaml:"category"`
	Level       dto.Level        `yaml:"level"`
	Instructor  string           `yaml:"instructor"`
	Thumbnail   string           `yaml:"thumbnail"`
	Sections    []OutlineSection `yaml:"sections"`
}

type OutlineSection struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Modules     []OutlineModule `yaml:"modules"`
}

// OutlineModule is one module. Media comes from either url or a local file
// path, resolved against the outline's directory.
type OutlineModule struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Type        dto.ContentType   `yaml:"type"`
	URL         string            `yaml:"url"`
	File        string            `yaml:"file"`
	Objectives  []string          `yaml:"objectives"`
	Quiz        []OutlineQuestion `yaml:"quiz"`
	Survey      []OutlineSurvey   `yaml:"survey"`
}

type OutlineQuestion struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}

type OutlineSurvey struct {
	Question string         `yaml:"question"`
	Type     dto.SurveyType `yaml:"type"`
	Options  []string       `yaml:"options"`
}

// ParseOutline decodes r strictly; unknown keys are errors.
func ParseOutline(r io.Reader) (*Outline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var o Outline
	if err := dec.Decode(&o); err != nil {
		return nil, errors.Wrap(err, "parse outline")
	}
	if err := o.check(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Outline) check() error {
	var problems []string
	if len(strings.TrimSpace(o.Title)) < 3 {
		problems = append(problems, "title must be at least 3 characters long")
	}
	if !o.Category.Valid() {
		problems = append(problems, fmt.Sprintf("unknown category %q", o.Category))
	}
	if !o.Level.Valid() {
		problems = append(problems, fmt.Sprintf("unknown level %q", o.Level))
	}
	for i, s := range o.Sections {
		for j, m := range s.Modules {
			if m.Type == "" {
				o.Sections[i].Modules[j].Type = dto.ContentVideo
			} else if !m.Type.Valid() {
				problems = append(problems, fmt.Sprintf("section %d module %d: unknown type %q", i+1, j+1, m.Type))
			}
			if o.Sections[i].Modules[j].Type == dto.ContentQuiz {
				for k, q := range m.Quiz {
					if strings.TrimSpace(q.Answer) == "" {
						problems = append(problems, fmt.Sprintf("section %d module %d question %d: answer is required", i+1, j+1, k+1))
					}
				}
			}
		}
	}
	if len(problems) > 0 {
		return errors.New("invalid outline: " + strings.Join(problems, "; "))
	}
	return nil
}

// CourseCreator creates the course the outline is imported into.
type CourseCreator interface {
	CreateCourse(ctx context.Context, course dto.Course) (*dto.Course, error)
}

type Importer struct {
	API     authoring.API
	Courses CourseCreator
	Log     zerolog.Logger
	// BaseDir resolves relative module file paths.
	BaseDir string
}

// Import creates the course, then every section and module in order.
func (im *Importer) Import(ctx context.Context, o *Outline) (*dto.Course, error) {
	course, err := im.Courses.CreateCourse(ctx, dto.Course{
		Title:       strings.TrimSpace(o.Title),
		Description: strings.TrimSpace(o.Description),
		Category:    o.Category,
		Level:       o.Level,
		Instructor:  dto.Instructor{Name: strings.TrimSpace(o.Instructor)},
		Thumbnail:   o.Thumbnail,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create course")
	}
	im.Log.Info().Str("courseId", course.ID).Str("title", course.Title).Msg("course created")

	tree := authoring.NewContentTree(course.ID, im.API, im.API)
	if err := tree.Load(ctx); err != nil {
		return nil, errors.Wrap(err, "load outline")
	}
	for _, s := range o.Sections {
		section, err := tree.AddSection(ctx, s.Title, s.Description)
		if err != nil {
			return nil, errors.Wrapf(err, "section %q", s.Title)
		}
		for _, m := range s.Modules {
			if err := im.importModule(ctx, tree, section.ID, m); err != nil {
				return nil, errors.Wrapf(err, "module %q", m.Title)
			}
		}
		im.Log.Info().Str("section", section.Title).Int("modules", len(s.Modules)).Msg("section imported")
	}
	return course, nil
}

func (im *Importer) importModule(ctx context.Context, tree *authoring.ContentTree, sectionID string, m OutlineModule) error {
	e, err := tree.NewModule(sectionID)
	if err != nil {
		return err
	}
	e.Title = m.Title
	e.Description = m.Description
	e.Objectives = m.Objectives
	if err := e.SetContentType(m.Type); err != nil {
		return err
	}

	switch {
	case m.URL != "":
		e.SetURL(m.URL)
	case m.File != "":
		path := m.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(im.BaseDir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		e.SelectFile(dto.UploadFile{Name: filepath.Base(path), Content: f})
	}

	for _, q := range m.Quiz {
		if err := addQuestion(e, q); err != nil {
			return err
		}
	}
	for _, q := range m.Survey {
		if err := addSurveyQuestion(e, q); err != nil {
			return err
		}
	}

	_, err = tree.SaveModule(ctx, sectionID, e)
	return err
}

func addQuestion(e *authoring.ModuleEditor, q OutlineQuestion) error {
	i := e.AddQuestion()
	if err := e.SetQuestionText(i, q.Question); err != nil {
		return err
	}
	slots := len(e.Questions()[i].Options)
	for j, opt := range q.Options {
		if j >= slots {
			if err := e.AddOption(i); err != nil {
				return err
			}
		}
		if err := e.SetOption(i, j, opt); err != nil {
			return err
		}
	}
	return errors.Wrapf(e.SetCorrectAnswer(i, q.Answer), "answer %q", q.Answer)
}

func addSurveyQuestion(e *authoring.ModuleEditor, q OutlineSurvey) error {
	i := e.AddSurveyQuestion()
	if err := e.SetSurveyText(i, q.Question); err != nil {
		return err
	}
	if q.Type == "" {
		return nil
	}
	if err := e.SetSurveyType(i, q.Type); err != nil {
		return err
	}
	if q.Type != dto.SurveyMultipleChoice {
		return nil
	}
	for j, opt := range q.Options {
		if err := e.AddSurveyOption(i); err != nil {
			return err
		}
		if err := e.SetSurveyOption(i, j, opt); err != nil {
			return err
		}
	}
	return nil
}
