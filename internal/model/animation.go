package model

import "path"

// Origin identifies which animation root an entry was discovered in.
type Origin string

const (
	// OriginBuiltin marks animations shipped with the application.
	OriginBuiltin Origin = "builtin"

	// OriginUser marks animations imported by the user at runtime.
	OriginUser Origin = "user"
)

// String returns the string representation of Origin.
func (o Origin) String() string {
	return string(o)
}

// AnimationEntry identifies one playable animation file. Path is absolute
// and slash-separated regardless of platform; entries are deduplicated by
// that normalized path.
type AnimationEntry struct {
	Path   string
	Origin Origin
}

// Name returns the file name of the entry without its directory.
func (e AnimationEntry) Name() string {
	return path.Base(e.Path)
}
