// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrFormat is the cause of every malformed numeric field.
	ErrFormat = errors.New("malformed field")
	// ErrNotFound is returned for object names the file does not declare.
	ErrNotFound = errors.New("object not found")
	// ErrIndexOutOfRange is returned when a face corner points outside of
	// the attribute table of its object.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrMissingIndex is returned when a face corner omitted a texture or
	// normal index that is needed to build the triangle.
	ErrMissingIndex = errors.New("missing index")
	// ErrShortFace is returned for faces with less than three corners.
	ErrShortFace = errors.New("face has less than 3 corners")
)

// ParseError reports the input line a record failed on.
type ParseError struct {
	Line int    // 1-based number of the processed line
	Text string // the raw line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Cause() error {
	return e.Err
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
