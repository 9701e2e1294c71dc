package authoring

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"lms/dto"
)

// ContentStore is what the content tree needs from the backend.
type ContentStore interface {
	SectionStore
	ModuleStore
}

// ContentTree is the section/module outline of one course. Every mutation
// is its own request; after a successful write the section collection is
// re-fetched rather than merged locally.
type ContentTree struct {
	courseID string
	store    ContentStore
	uploader Uploader
	opts     []ModuleOption

	sections []dto.Section
	expanded map[string]bool
}

func NewContentTree(courseID string, store ContentStore, uploader Uploader, opts ...ModuleOption) *ContentTree {
	return &ContentTree{
		courseID: courseID,
		store:    store,
		uploader: uploader,
		opts:     opts,
		expanded: make(map[string]bool),
	}
}

func (t *ContentTree) CourseID() string { return t.courseID }

// Load replaces the in-memory outline with the persisted one.
func (t *ContentTree) Load(ctx context.Context) error {
	sections, err := t.store.ListSections(ctx, t.courseID)
	if err != nil {
		return errors.Wrap(err, "load sections")
	}
	t.sections = sections
	return nil
}

// reload re-fetches the outline after a committed write.
func (t *ContentTree) reload(ctx context.Context) error {
	if err := t.Load(ctx); err != nil {
		return &ReloadError{Err: err}
	}
	return nil
}

// Sections returns the outline in display order.
func (t *ContentTree) Sections() []dto.Section {
	out := make([]dto.Section, len(t.sections))
	copy(out, t.sections)
	return out
}

func (t *ContentTree) Section(id string) (dto.Section, bool) {
	for _, s := range t.sections {
		if s.ID == id {
			return s, true
		}
	}
	return dto.Section{}, false
}

type sectionDraft struct {
	Title string `json:"title" validate:"required"`
}

func validateSection(in dto.SectionInput) (dto.SectionInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	verr := &ValidationError{}
	check(verr, sectionDraft{Title: in.Title})
	return in, verr.orNil()
}

// AddSection creates a section. When only the re-fetch afterwards fails, the
// created section is returned together with a *ReloadError.
func (t *ContentTree) AddSection(ctx context.Context, title, description string) (*dto.Section, error) {
	in, err := validateSection(dto.SectionInput{Title: title, Description: description})
	if err != nil {
		return nil, err
	}
	created, err := t.store.CreateSection(ctx, t.courseID, in)
	if err != nil {
		return nil, errors.Wrap(err, "create section")
	}
	return created, t.reload(ctx)
}

// UpdateSection saves a section's title and description. A *ReloadError
// means the update was stored.
func (t *ContentTree) UpdateSection(ctx context.Context, id, title, description string) (*dto.Section, error) {
	if _, ok := t.Section(id); !ok {
		return nil, ErrUnknownSection
	}
	in, err := validateSection(dto.SectionInput{Title: title, Description: description})
	if err != nil {
		return nil, err
	}
	updated, err := t.store.UpdateSection(ctx, t.courseID, id, in)
	if err != nil {
		return nil, errors.Wrap(err, "update section")
	}
	return updated, t.reload(ctx)
}

// DeleteSection removes a section and its modules once confirm agrees.
func (t *ContentTree) DeleteSection(ctx context.Context, id string, confirm ConfirmFunc) error {
	s, ok := t.Section(id)
	if !ok {
		return ErrUnknownSection
	}
	if confirm == nil || !confirm("Delete section \""+s.Title+"\" and all of its modules?") {
		return ErrNotConfirmed
	}
	if err := t.store.DeleteSection(ctx, t.courseID, id); err != nil {
		return errors.Wrap(err, "delete section")
	}
	delete(t.expanded, id)
	return t.reload(ctx)
}

// ToggleExpanded flips the collapsed state of a section. It is never persisted.
func (t *ContentTree) ToggleExpanded(id string) bool {
	t.expanded[id] = !t.expanded[id]
	return t.expanded[id]
}

func (t *ContentTree) IsExpanded(id string) bool { return t.expanded[id] }

// NewModule opens an empty module editor for a section of the tree.
func (t *ContentTree) NewModule(sectionID string) (*ModuleEditor, error) {
	if _, ok := t.Section(sectionID); !ok {
		return nil, ErrUnknownSection
	}
	e := NewModuleEditor(t.courseID, t.store, t.uploader, t.opts...)
	e.sectionID = sectionID
	return e, nil
}

// EditModule opens an editor hydrated from a module already in the tree.
func (t *ContentTree) EditModule(sectionID, moduleID string) (*ModuleEditor, error) {
	s, ok := t.Section(sectionID)
	if !ok {
		return nil, ErrUnknownSection
	}
	for _, m := range s.Modules {
		if m.ID == moduleID {
			return LoadModuleEditor(t.courseID, sectionID, m, t.store, t.uploader, t.opts...), nil
		}
	}
	return nil, ErrUnknownModule
}

// SaveModule saves e under sectionID and refreshes the outline.
func (t *ContentTree) SaveModule(ctx context.Context, sectionID string, e *ModuleEditor) (*dto.Module, error) {
	if _, ok := t.Section(sectionID); !ok {
		return nil, ErrUnknownSection
	}
	m, err := e.Save(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	t.expanded[sectionID] = true
	return m, t.reload(ctx)
}

func (t *ContentTree) DeleteModule(ctx context.Context, sectionID, moduleID string, confirm ConfirmFunc) error {
	s, ok := t.Section(sectionID)
	if !ok {
		return ErrUnknownSection
	}
	var title string
	found := false
	for _, m := range s.Modules {
		if m.ID == moduleID {
			title, found = m.Title, true
			break
		}
	}
	if !found {
		return ErrUnknownModule
	}
	if confirm == nil || !confirm("Delete module \""+title+"\"?") {
		return ErrNotConfirmed
	}
	if err := t.store.DeleteModule(ctx, t.courseID, sectionID, moduleID); err != nil {
		return errors.Wrap(err, "delete module")
	}
	return t.reload(ctx)
}
