// Package authoring is the course content authoring core: in-memory drafts
// for sections, modules (with quiz and survey sub-editors), assignments,
// projects and grades, validated locally and persisted through injected
// collaborators.
//
// Drafts are owned by a single editor value and are not safe for concurrent
// use. A failed save never mutates the draft, so the caller may retry.
package authoring
