package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const base = "https://api.example.com"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		kind Kind
		want string
	}{
		{name: "empty", ref: "", want: ""},
		{name: "blank", ref: "   ", want: ""},
		{name: "https", ref: "https://youtu.be/abc", want: "https://youtu.be/abc"},
		{name: "http upper case", ref: "HTTP://cdn.example.com/a.png", want: "HTTP://cdn.example.com/a.png"},
		{name: "blob", ref: "blob:https://app/1234", want: "blob:https://app/1234"},
		{name: "protocol relative", ref: "//cdn.example.com/x.jpg", want: "//cdn.example.com/x.jpg"},
		{name: "bucket relative", ref: "courses/42/cover.png", want: base + "/courses/42/cover.png"},
		{name: "bare video", ref: "clip.mp4", want: base + "/uploads/videos/clip.mp4"},
		{name: "bare mov upper", ref: "Lecture.MOV", want: base + "/uploads/videos/Lecture.MOV"},
		{name: "rooted upload", ref: "/uploads/notes.pdf", want: base + "/uploads/notes.pdf"},
		{name: "rooted video", ref: "/clip.avi", want: base + "/uploads/videos/clip.avi"},
		{name: "bare other", ref: "notes.pdf", want: base + "/notes.pdf"},
		{name: "bare image with kind", ref: "cover.png", kind: KindImage, want: base + "/uploads/images/cover.png"},
		{name: "bare document with kind", ref: "notes.pdf", kind: KindDocument, want: base + "/uploads/documents/notes.pdf"},
		{name: "video kind without extension", ref: "stream", kind: KindVideo, want: base + "/uploads/videos/stream"},
		{name: "already prefixed video", ref: "uploads/videos/clip.mp4", want: base + "/uploads/videos/clip.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolver{Base: base}.Resolve(tt.ref, tt.kind))
		})
	}
}

func TestResolveAvoidsDoubleSlash(t *testing.T) {
	assert.Equal(t, base+"/notes.pdf", Resolve("/notes.pdf", base+"/"))
}

func TestResolveIdempotentForAbsolute(t *testing.T) {
	for _, u := range []string{"https://youtu.be/abc", "http://x/y.mp4", "data:image/png;base64,AAAA"} {
		once := Resolve(u, base)
		assert.Equal(t, u, once)
		assert.Equal(t, once, Resolve(once, base))
	}
}

func TestResolveVideoPrefixAppliedOnce(t *testing.T) {
	once := Resolve("clip.mp4", base)
	twice := Resolve(once, base)
	assert.Equal(t, 1, strings.Count(once, VideoPrefix))
	assert.Equal(t, once, twice)

	// a relative base keeps the output relative; re-resolving must still not stack prefixes
	rel := Resolve("clip.mp4", "/api")
	assert.Equal(t, "/api/uploads/videos/clip.mp4", rel)
	assert.Equal(t, rel, Resolve(rel, "/api"))
}
