// Package dto holds the JSON shapes exchanged between the authoring client
// and the course API.
package dto

import (
	"bytes"
	"encoding/json"
)

// Category is the fixed single-select course category.
type Category string

const (
	CategoryDevelopment         Category = "development"
	CategoryBusiness            Category = "business"
	CategoryDesign              Category = "design"
	CategoryMarketing           Category = "marketing"
	CategoryITSoftware          Category = "it-software"
	CategoryPersonalDevelopment Category = "personal-development"
	CategoryPhotography         Category = "photography"
	CategoryMusic               Category = "music"
	CategoryOther               Category = "other"
)

// Categories lists every accepted Category in display order.
var Categories = []Category{
	CategoryDevelopment,
	CategoryBusiness,
	CategoryDesign,
	CategoryMarketing,
	CategoryITSoftware,
	CategoryPersonalDevelopment,
	CategoryPhotography,
	CategoryMusic,
	CategoryOther,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Level is the course difficulty.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

type Instructor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Course is the aggregate root of the authoring model. An empty ID denotes
// an unsaved draft.
type Course struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Level       Level        `json:"level"`
	Instructor  Instructor   `json:"instructor"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	PromoVideo  string       `json:"promoVideo,omitempty"`
	IsPublic    bool         `json:"isPublic"`
	Sections    []Section    `json:"sections,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
	Project     *Assignment  `json:"project"`
}

// IsDraft reports whether the course has never been persisted.
func (c Course) IsDraft() bool { return c.ID == "" }

// CourseUpdate is a partial course update. Nil fields are left untouched.
// Project is only applied when ProjectSet is true; a nil Project then
// clears the course's project (encoded as an explicit null).
type CourseUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Category    *Category   `json:"category,omitempty"`
	Level       *Level      `json:"level,omitempty"`
	Instructor  *Instructor `json:"instructor,omitempty"`
	Thumbnail   *string     `json:"thumbnail,omitempty"`
	PromoVideo  *string     `json:"promoVideo,omitempty"`
	IsPublic    *bool       `json:"isPublic,omitempty"`
	Project     *Assignment `json:"-"`
	ProjectSet  bool        `json:"-"`
}

type courseUpdateFields CourseUpdate

func (u CourseUpdate) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(courseUpdateFields(u))
	if err != nil || !u.ProjectSet {
		return b, err
	}
	project, err := json.Marshal(u.Project)
	if err != nil {
		return nil, err
	}
	out := bytes.TrimSuffix(bytes.TrimSpace(b), []byte("}"))
	if len(out) > 1 {
		out = append(out, ',')
	}
	out = append(out, []byte(`"project":`)...)
	out = append(out, project...)
	return append(out, '}'), nil
}

func (u *CourseUpdate) UnmarshalJSON(b []byte) error {
	var fields courseUpdateFields
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	*u = CourseUpdate(fields)
	raw, ok := keys["project"]
	if !ok {
		return nil
	}
	u.ProjectSet = true
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var project Assignment
	if err := json.Unmarshal(raw, &project); err != nil {
		return err
	}
	u.Project = &project
	return nil
}

// Section is an ordered grouping of modules. Display order is slice order.
type Section struct {
	ID          string   `json:"id,omitempty"`
	CourseID    string   `json:"courseId,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Modules     []Module `json:"modules"`
}

type SectionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
