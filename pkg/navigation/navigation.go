package navigation

import "strings"

const (
	BoardPath      = "/"
	notePathPrefix = "/note/"
)

// Navigator moves the external view to a path.
type Navigator interface {
	NavigateTo(path string)
}

// NotePath returns the detail path for a note.
func NotePath(id string) string {
	return notePathPrefix + id
}

// NoteID extracts the note id from a detail path.
func NoteID(path string) (string, bool) {
	if !strings.HasPrefix(path, notePathPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, notePathPrefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// Resolve maps a requested path onto one the view can show. Detail paths for
// notes that do not exist, and unknown paths, fall back to the board.
func Resolve(path string, exists func(id string) bool) string {
	if path == BoardPath {
		return BoardPath
	}
	if id, ok := NoteID(path); ok && exists(id) {
		return path
	}
	return BoardPath
}
