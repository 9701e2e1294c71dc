package authoring

import (
	"strings"

	"lms/dto"
	"lms/media"
)

// PreviewKind is how a submission body or module content is displayed.
type PreviewKind string

const (
	PreviewNone     PreviewKind = "none"
	PreviewText     PreviewKind = "text"
	PreviewLink     PreviewKind = "link"
	PreviewImage    PreviewKind = "image"
	PreviewVideo    PreviewKind = "video"
	PreviewPDF      PreviewKind = "pdf"
	PreviewDownload PreviewKind = "download"
)

// Preview is the render decision for one submission.
type Preview struct {
	Kind PreviewKind
	Text string
	URL  string
	Name string
	Size int64
}

// RenderSubmission picks the display for s. Files are previewed inline
// when their MIME type is an image, a video or a pdf and offered as a
// download otherwise.
func RenderSubmission(s dto.Submission, r media.Resolver) Preview {
	switch s.SubmissionType {
	case dto.SubmissionText:
		return Preview{Kind: PreviewText, Text: s.Text}
	case dto.SubmissionLink:
		return Preview{Kind: PreviewLink, URL: s.Link}
	case dto.SubmissionFileUpload:
		if s.File == nil || s.File.URL == "" {
			return Preview{Kind: PreviewNone}
		}
		p := Preview{Name: s.File.Name, Size: s.File.Size}
		mime := strings.ToLower(s.File.Type)
		switch {
		case strings.HasPrefix(mime, "image/"):
			p.Kind = PreviewImage
			p.URL = r.Resolve(s.File.URL, media.KindImage)
		case strings.HasPrefix(mime, "video/"):
			p.Kind = PreviewVideo
			p.URL = r.Resolve(s.File.URL, media.KindVideo)
		case mime == "application/pdf":
			p.Kind = PreviewPDF
			p.URL = r.Resolve(s.File.URL, media.KindDocument)
		default:
			p.Kind = PreviewDownload
			p.URL = r.Resolve(s.File.URL, media.KindAuto)
		}
		return p
	}
	return Preview{Kind: PreviewNone}
}

// ModuleMediaURL resolves a module's content reference for playback. Quiz
// modules have none.
func ModuleMediaURL(m dto.Module, r media.Resolver) string {
	switch m.Type {
	case dto.ContentVideo:
		return r.Resolve(m.ContentURL, media.KindVideo)
	case dto.ContentPDF:
		return r.Resolve(m.ContentURL, media.KindDocument)
	}
	return ""
}
