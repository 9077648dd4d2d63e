package errors

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors accumulates validation failures keyed by field path,
// e.g. "modules[1].lessons[0].order".
type FieldErrors map[string]string

// Add records a failure for path. The first reason recorded for a path wins.
func (f FieldErrors) Add(path, reason string) {
	if _, exists := f[path]; exists {
		return
	}
	f[path] = reason
}

// Merge copies other into f, prefixing every path with prefix.
func (f FieldErrors) Merge(prefix string, other FieldErrors) {
	for path, reason := range other {
		f.Add(JoinPath(prefix, path), reason)
	}
}

// Empty reports whether no failure was recorded.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Paths returns the recorded field paths in sorted order.
func (f FieldErrors) Paths() []string {
	paths := make([]string, 0, len(f))
	for path := range f {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths
}

// Err converts the accumulated failures into a validation AppError, or nil.
func (f FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}

	fields := make(map[string]string, len(f))
	for path, reason := range f {
		fields[path] = reason
	}

	return ErrValidationFailed.WithDetails(map[string]any{"fields": fields})
}

// JoinPath joins a parent path and a child path with a dot.
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

// IndexPath formats an element path such as "modules[2]".
func IndexPath(prefix string, index int) string {
	return fmt.Sprintf("%s[%d]", prefix, index)
}

// NewRequestShapeError reports a missing or malformed top-level key.
func NewRequestShapeError(key, reason string) error {
	return ErrInvalidRequest.WithField(key, reason)
}

// NewValidationError reports a single field failure.
func NewValidationError(field, reason string) error {
	return ErrValidationFailed.WithField(field, reason)
}
