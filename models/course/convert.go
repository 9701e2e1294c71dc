package course

import (
	"encoding/json"
	"strconv"

	"gorm.io/datatypes"

	"lms/dto"
)

func idString(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses a path or payload identifier. Zero and malformed values
// report false.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// EncodeJSON stores v in a nullable JSON column; nil stays NULL.
func EncodeJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return datatypes.JSON(b), nil
}

func decodeJSON(raw datatypes.JSON, v interface{}) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func (c Course) ProjectDTO() *dto.Assignment {
	var p dto.Assignment
	if !decodeJSON(c.Project, &p) {
		return nil
	}
	p.CourseID = idString(c.ID)
	return &p
}

func (c Course) ToDTO() dto.Course {
	out := dto.Course{
		ID:          idString(c.ID),
		Title:       c.Title,
		Description: c.Description,
		Category:    dto.Category(c.Category),
		Level:       dto.Level(c.Level),
		Instructor:  dto.Instructor{Name: c.InstructorName, Avatar: c.InstructorAvatar},
		Thumbnail:   c.Thumbnail,
		PromoVideo:  c.PromoVideo,
		IsPublic:    c.IsPublic,
		Project:     c.ProjectDTO(),
	}
	for _, s := range c.Sections {
		out.Sections = append(out.Sections, s.ToDTO())
	}
	for _, a := range c.Assignments {
		out.Assignments = append(out.Assignments, a.ToDTO())
	}
	return out
}

func (s Section) ToDTO() dto.Section {
	out := dto.Section{
		ID:          idString(s.ID),
		CourseID:    idString(s.CourseID),
		Title:       s.Title,
		Description: s.Description,
		Modules:     make([]dto.Module, 0, len(s.Modules)),
	}
	for _, m := range s.Modules {
		out.Modules = append(out.Modules, m.ToDTO())
	}
	return out
}

func (m Module) ToDTO() dto.Module {
	out := dto.Module{
		ID:          idString(m.ID),
		SectionID:   idString(m.SectionID),
		Title:       m.Title,
		Description: m.Description,
		Objectives:  []string(m.Objectives),
		Type:        dto.ContentType(m.Type),
		ContentURL:  m.ContentURL,
		Materials:   []dto.Material(m.Materials),
	}
	if out.Objectives == nil {
		out.Objectives = []string{}
	}
	var quiz dto.Quiz
	if decodeJSON(m.Quiz, &quiz) {
		out.Quiz = &quiz
	}
	var survey dto.Survey
	if decodeJSON(m.Survey, &survey) {
		out.Survey = &survey
	}
	return out
}

// ApplyInput copies a module payload onto m.
func (m *Module) ApplyInput(in dto.ModuleInput) error {
	quiz, err := EncodeJSON(in.Quiz)
	if err != nil {
		return err
	}
	survey, err := EncodeJSON(in.Survey)
	if err != nil {
		return err
	}
	m.Title = in.Title
	m.Description = in.Description
	m.Objectives = datatypes.JSONSlice[string](in.Objectives)
	m.Type = string(in.Type)
	m.ContentURL = in.ContentURL
	m.Quiz = quiz
	m.Survey = survey
	m.Materials = datatypes.JSONSlice[dto.Material](in.Materials)
	return nil
}

func (a Assignment) ToDTO() dto.Assignment {
	out := dto.Assignment{
		ID:           idString(a.ID),
		CourseID:     idString(a.CourseID),
		Title:        a.Title,
		Instructions: a.Instructions,
		DueDate:      a.DueDate,
		Materials:    []dto.Material(a.Materials),
		MaxPoints:    a.MaxPoints,
	}
	for _, t := range a.SubmissionTypes {
		out.SubmissionTypes = append(out.SubmissionTypes, dto.SubmissionType(t))
	}
	return out
}

func (a *Assignment) ApplyInput(in dto.Assignment) {
	types := make([]string, 0, len(in.SubmissionTypes))
	for _, t := range in.SubmissionTypes {
		types = append(types, string(t))
	}
	a.Title = in.Title
	a.Instructions = in.Instructions
	a.DueDate = in.DueDate
	a.SubmissionTypes = datatypes.JSONSlice[string](types)
	a.Materials = datatypes.JSONSlice[dto.Material](in.Materials)
	a.MaxPoints = in.MaxPoints
}

func (s Submission) ToDTO() dto.Submission {
	out := dto.Submission{
		ID:             idString(s.ID),
		UserID:         idString(s.UserID),
		SubmissionType: dto.SubmissionType(s.SubmissionType),
		Text:           s.Text,
		Link:           s.Link,
		Grade:          s.Grade,
		Feedback:       s.Feedback,
		SubmittedAt:    s.CreatedAt,
	}
	if s.AssignmentID != nil {
		out.AssignmentID = idString(*s.AssignmentID)
	}
	if s.ProjectID != "" {
		out.AssignmentID = s.ProjectID
	}
	if s.FileURL != "" {
		out.File = &dto.SubmissionFile{URL: s.FileURL, Name: s.FileName, Type: s.FileType, Size: s.FileSize}
	}
	return out
}
