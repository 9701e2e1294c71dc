package authoring

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/dto"
)

func TestContentTreeSectionLifecycle(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	tree := NewContentTree("course-1", api, api)
	require.NoError(t, tree.Load(ctx))
	assert.Empty(t, tree.Sections())

	_, err := tree.AddSection(ctx, "  ", "")
	assert.True(t, IsValidation(err))
	assert.Equal(t, 1, api.total())

	s1, err := tree.AddSection(ctx, " Week 1 ", "basics")
	require.NoError(t, err)
	assert.Equal(t, "Week 1", s1.Title)
	_, err = tree.AddSection(ctx, "Week 2", "")
	require.NoError(t, err)

	sections := tree.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "Week 1", sections[0].Title)
	assert.Equal(t, "Week 2", sections[1].Title)

	_, err = tree.UpdateSection(ctx, s1.ID, "Week One", "")
	require.NoError(t, err)
	assert.Equal(t, "Week One", tree.Sections()[0].Title)

	_, err = tree.UpdateSection(ctx, "missing", "x", "")
	assert.ErrorIs(t, err, ErrUnknownSection)

	assert.True(t, tree.ToggleExpanded(s1.ID))
	assert.True(t, tree.IsExpanded(s1.ID))
	assert.False(t, tree.ToggleExpanded(s1.ID))

	deletes := api.count("DeleteSection")
	err = tree.DeleteSection(ctx, s1.ID, func(string) bool { return false })
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.ErrorIs(t, tree.DeleteSection(ctx, s1.ID, nil), ErrNotConfirmed)
	assert.Equal(t, deletes, api.count("DeleteSection"))

	var prompt string
	require.NoError(t, tree.DeleteSection(ctx, s1.ID, func(p string) bool { prompt = p; return true }))
	assert.Contains(t, prompt, "Week One")
	require.Len(t, tree.Sections(), 1)
	assert.Equal(t, "Week 2", tree.Sections()[0].Title)
}

func TestContentTreeFailedWriteKeepsOutline(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	tree := NewContentTree("course-1", api, api)
	_, err := tree.AddSection(ctx, "Week 1", "")
	require.NoError(t, err)

	api.fail["UpdateSection"] = errors.New("Section update failed")
	_, err = tree.UpdateSection(ctx, tree.Sections()[0].ID, "Renamed", "")
	require.Error(t, err)
	assert.Equal(t, "Week 1", tree.Sections()[0].Title)
}

func TestContentTreeReportsReloadFailureAfterWrite(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	tree := NewContentTree("course-1", api, api)
	api.fail["ListSections"] = errors.New("timeout")

	created, err := tree.AddSection(ctx, "Week 1", "")
	require.Error(t, err)
	assert.True(t, IsReload(err))
	assert.Contains(t, err.Error(), "timeout")
	require.NotNil(t, created)
	assert.Len(t, api.sections, 1)
	assert.Empty(t, tree.Sections())

	delete(api.fail, "ListSections")
	require.NoError(t, tree.Load(ctx))
	require.Len(t, tree.Sections(), 1)

	api.fail["UpdateSection"] = errors.New("Section update failed")
	_, err = tree.UpdateSection(ctx, created.ID, "Renamed", "")
	require.Error(t, err)
	assert.False(t, IsReload(err))
}

func TestContentTreeModules(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	tree := NewContentTree("course-1", api, api)
	s, err := tree.AddSection(ctx, "Week 1", "")
	require.NoError(t, err)

	_, err = tree.NewModule("missing")
	assert.ErrorIs(t, err, ErrUnknownSection)

	e, err := tree.NewModule(s.ID)
	require.NoError(t, err)
	e.Title = "Intro"
	e.SetURL("https://youtu.be/abc")
	m, err := tree.SaveModule(ctx, s.ID, e)
	require.NoError(t, err)
	assert.True(t, tree.IsExpanded(s.ID))

	section, ok := tree.Section(s.ID)
	require.True(t, ok)
	require.Len(t, section.Modules, 1)
	assert.Equal(t, m.ID, section.Modules[0].ID)

	_, err = tree.EditModule(s.ID, "missing")
	assert.ErrorIs(t, err, ErrUnknownModule)

	edit, err := tree.EditModule(s.ID, m.ID)
	require.NoError(t, err)
	edit.Title = "Introduction"
	_, err = tree.SaveModule(ctx, s.ID, edit)
	require.NoError(t, err)
	section, _ = tree.Section(s.ID)
	require.Len(t, section.Modules, 1)
	assert.Equal(t, "Introduction", section.Modules[0].Title)

	assert.ErrorIs(t, tree.DeleteModule(ctx, s.ID, m.ID, func(string) bool { return false }), ErrNotConfirmed)
	require.NoError(t, tree.DeleteModule(ctx, s.ID, m.ID, Confirmed))
	section, _ = tree.Section(s.ID)
	assert.Empty(t, section.Modules)
}

func TestContentTreeUsesTypeSwitchPolicy(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	tree := NewContentTree("course-1", api, api, WithPreserveOnTypeSwitch(true))
	s, err := tree.AddSection(ctx, "Week 1", "")
	require.NoError(t, err)

	e, err := tree.NewModule(s.ID)
	require.NoError(t, err)
	require.NoError(t, e.SetContentType(dto.ContentQuiz))
	e.AddQuestion()
	require.NoError(t, e.SetContentType(dto.ContentPDF))
	require.NoError(t, e.SetContentType(dto.ContentQuiz))
	assert.Len(t, e.Questions(), 1)
}
