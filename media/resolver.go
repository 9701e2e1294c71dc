// Package media turns stored media references into fetchable URLs.
package media

import (
	"path"
	"strings"
)

// Kind is the declared kind of a media reference.
type Kind string

const (
	KindAuto     Kind = ""
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

const (
	VideoPrefix    = "uploads/videos/"
	ImagePrefix    = "uploads/images/"
	DocumentPrefix = "uploads/documents/"
)

var absoluteSchemes = []string{"http://", "https://", "blob:", "data:", "//"}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".mkv":  true,
}

// Resolver resolves references against a base URL such as the API host.
type Resolver struct {
	Base string
}

// Resolve is shorthand for Resolver{Base: base}.Resolve(ref, KindAuto).
func Resolve(ref, base string) string {
	return Resolver{Base: base}.Resolve(ref, KindAuto)
}

// IsAbsolute reports whether ref starts with a recognized absolute scheme.
func IsAbsolute(ref string) bool {
	lower := strings.ToLower(ref)
	for _, scheme := range absoluteSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// IsVideo reports whether ref ends in a known video container extension.
func IsVideo(ref string) bool {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return videoExtensions[strings.ToLower(path.Ext(ref))]
}

// Resolve never fails: malformed legacy references degrade to a plain join
// with the base. An empty ref yields "" and means "no media".
func (r Resolver) Resolve(ref string, kind Kind) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if IsAbsolute(ref) {
		return ref
	}
	if r.Base != "" && strings.HasPrefix(ref, strings.TrimRight(r.Base, "/")+"/") {
		return ref
	}

	rooted := strings.HasPrefix(ref, "/")
	rel := strings.TrimLeft(ref, "/")

	switch {
	case !rooted && strings.Contains(rel, "/"):
		// bucket-relative path, joined as-is
	case strings.HasPrefix(rel, "uploads/"):
		// already carries an upload prefix
	case kind == KindVideo || (kind == KindAuto && IsVideo(rel)):
		rel = VideoPrefix + rel
	case kind == KindImage && !rooted:
		rel = ImagePrefix + rel
	case kind == KindDocument && !rooted:
		rel = DocumentPrefix + rel
	}
	return join(r.Base, rel)
}

func join(base, rel string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(rel, "/")
}
