package objfile

import "errors"

var (
	// ErrNoFaces reports a face list that is not triangles, which the
	// 3-D writers cannot represent.
	ErrNoFaces = errors.New("objfile: face list must be non-empty triangles")

	// ErrFormat reports a malformed vertex line in an OBJ stream.
	ErrFormat = errors.New("objfile: malformed vertex line")
)
