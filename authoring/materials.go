package authoring

import (
	"context"

	"github.com/pkg/errors"

	"lms/dto"
)

// MaterialList is the ordered attachment list of an assignment, project or
// module. Entries are appended only after a successful upload; duplicates
// are kept.
type MaterialList struct {
	uploader Uploader
	items    []dto.Material
}

func NewMaterialList(uploader Uploader, existing ...dto.Material) *MaterialList {
	items := make([]dto.Material, len(existing))
	copy(items, existing)
	return &MaterialList{uploader: uploader, items: items}
}

// Upload sends file to the material upload endpoint and appends the result.
// On failure the list is left unchanged.
func (l *MaterialList) Upload(ctx context.Context, file dto.UploadFile) (dto.Material, error) {
	res, err := l.uploader.Upload(ctx, dto.UploadMaterial, file)
	if err != nil {
		return dto.Material{}, errors.Wrapf(err, "upload %q", file.Name)
	}
	m := dto.Material{Name: res.Name, URL: res.URL, Type: res.Type}
	if m.Name == "" {
		m.Name = file.Name
	}
	if m.Type == "" {
		m.Type = "raw"
	}
	l.items = append(l.items, m)
	return m, nil
}

// Remove drops the entry at index i. The uploaded blob is not deleted.
func (l *MaterialList) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

func (l *MaterialList) Len() int { return len(l.items) }

// Items returns a copy of the entries in insertion order.
func (l *MaterialList) Items() []dto.Material {
	out := make([]dto.Material, len(l.items))
	copy(out, l.items)
	return out
}
