// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"bufio"
	"io"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// File is a parsed wavefront document. The zero value is an empty file
// ready for ProcessLine.
type File struct {
	name    string
	names   []string
	objects map[string]*Object
	current string
	line    int
}

// NewFile returns an empty file. name is only used for reporting.
func NewFile(name string) *File {
	return &File{name: name}
}

// Parse processes text and returns the resulting file.
func Parse(name, text string) (*File, error) {
	f := NewFile(name)
	if err := f.ProcessText(text); err != nil {
		return nil, err
	}
	return f, nil
}

// Decode reads r line by line.
func Decode(name string, r io.Reader) (*File, error) {
	f := NewFile(name)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for s.Scan() {
		if err := f.ProcessLine(s.Text()); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return f, nil
}

func (f *File) Name() string {
	return f.name
}

// active returns the object the attribute lines currently go to, creating
// it on first use. Attributes before any 'o' land in the object "".
func (f *File) active() *Object {
	if o, ok := f.objects[f.current]; ok {
		return o
	}
	return f.declare(f.current)
}

func (f *File) declare(name string) *Object {
	if f.objects == nil {
		f.objects = make(map[string]*Object)
	}
	o, ok := f.objects[name]
	if !ok {
		o = &Object{}
		f.objects[name] = o
		f.names = append(f.names, name)
	}
	f.current = name
	return o
}

// ProcessLine dispatches one line by its directive. Unknown directives,
// comments and blank lines are ignored. Records already added stay in
// place when an error is returned.
func (f *File) ProcessLine(s string) error {
	f.line++
	l := PartitionLine(StripWhitespace(StripComments(s)))
	var err error
	switch l.Command {
	case "o":
		f.declare(l.Parameters)
	case "v":
		var v Vertex
		if v, err = ParseVertex(l.Parameters); err == nil {
			o := f.active()
			o.Vertices = append(o.Vertices, v)
		}
	case "vt":
		var t TexCoord
		if t, err = ParseTexCoord(l.Parameters); err == nil {
			o := f.active()
			o.TexCoords = append(o.TexCoords, t)
		}
	case "vn":
		var n Normal
		if n, err = ParseNormal(l.Parameters); err == nil {
			o := f.active()
			o.Normals = append(o.Normals, n)
		}
	case "f":
		var fc Face
		if fc, err = ParseFace(l.Parameters); err == nil {
			o := f.active()
			o.Faces = append(o.Faces, fc)
		}
	}
	if err != nil {
		return &ParseError{Line: f.line, Text: s, Err: err}
	}
	return nil
}

// ProcessText feeds every '\n' separated line of text to ProcessLine and
// stops at the first error.
func (f *File) ProcessText(text string) error {
	for _, l := range Split(text, '\n') {
		if err := f.ProcessLine(l); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) ObjectCount() int {
	return len(f.names)
}

// Objects returns the object names in order of their first declaration.
func (f *File) Objects() []string {
	return append([]string(nil), f.names...)
}

// Object returns a copy of the named object. Changes to it do not reach
// the file.
func (f *File) Object(name string) (*Object, error) {
	o, err := f.object(name)
	if err != nil {
		return nil, err
	}
	return o.clone(), nil
}

func (f *File) object(name string) (*Object, error) {
	o, ok := f.objects[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q in %s", name, f.name)
	}
	return o, nil
}

func (o *Object) clone() *Object {
	c := &Object{
		Vertices:  slices.Clone(o.Vertices),
		TexCoords: slices.Clone(o.TexCoords),
		Normals:   slices.Clone(o.Normals),
		Faces:     make([]Face, len(o.Faces)),
	}
	for i, fc := range o.Faces {
		c.Faces[i] = Face{Indices: slices.Clone(fc.Indices)}
	}
	return c
}
