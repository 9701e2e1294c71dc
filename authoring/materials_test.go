package authoring

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/dto"
)

func TestMaterialAppendOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	list := NewMaterialList(api, dto.Material{Name: "syllabus", URL: "/uploads/s.pdf", Type: "raw"})

	api.fail["Upload"] = errors.New("Upload failed")
	_, err := list.Upload(ctx, dto.UploadFile{Name: "a.pdf", Content: strings.NewReader("x")})
	require.Error(t, err)
	assert.Equal(t, 1, list.Len())

	delete(api.fail, "Upload")
	api.uploadName = "reported-name.pdf"
	m, err := list.Upload(ctx, dto.UploadFile{Name: "a.pdf", Content: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, "reported-name.pdf", m.Name)
	assert.Equal(t, m, list.Items()[1])
	assert.Equal(t, []dto.UploadCategory{dto.UploadMaterial}, api.uploads)
}

func TestMaterialListKeepsDuplicatesAndOrder(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	list := NewMaterialList(api)
	for i := 0; i < 2; i++ {
		_, err := list.Upload(ctx, dto.UploadFile{Name: "same.png", Content: strings.NewReader("x")})
		require.NoError(t, err)
	}
	_, err := list.Upload(ctx, dto.UploadFile{Name: "other.png", Content: strings.NewReader("x")})
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	require.NoError(t, list.Remove(0))
	items := list.Items()
	assert.Equal(t, "same.png", items[0].Name)
	assert.Equal(t, "other.png", items[1].Name)
	assert.ErrorIs(t, list.Remove(5), ErrIndexOutOfRange)

	// Items is a copy
	items[0].Name = "changed"
	assert.Equal(t, "same.png", list.Items()[0].Name)
}
