// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"github.com/pkg/errors"
)

// ProduceTriangles calls fn three times per face of the named object, once
// for each of the first three corners. Faces are expected to be
// triangulated already, further corners are dropped.
// Calls made before an error are not undone.
func (f *File) ProduceTriangles(name string, fn TriangleFunc) error {
	o, err := f.object(name)
	if err != nil {
		return err
	}
	for i, face := range o.Faces {
		if len(face.Indices) < 3 {
			return errors.Wrapf(ErrShortFace, "object %q face %d", name, i)
		}
		for c := 0; c < 3; c++ {
			v, t, n, err := o.resolve(face.Indices[c])
			if err != nil {
				return errors.Wrapf(err, "object %q face %d corner %d", name, i, c)
			}
			fn(v, t, n)
		}
	}
	return nil
}

// Collect is ProduceTriangles for a TriangleCollector.
func (f *File) Collect(name string, c TriangleCollector) error {
	return f.ProduceTriangles(name, c.HandleVertex)
}

func (o *Object) resolve(idx Indices) (Vertex, TexCoord, Normal, error) {
	if !idx.HasTexture() {
		return Vertex{}, TexCoord{}, Normal{}, errors.Wrap(ErrMissingIndex, "texture")
	}
	if !idx.HasNormal() {
		return Vertex{}, TexCoord{}, Normal{}, errors.Wrap(ErrMissingIndex, "normal")
	}
	v := idx.Vertex - 1
	t := idx.Texture - 1
	n := idx.Normal - 1
	switch {
	case v < 0 || v >= len(o.Vertices):
		return Vertex{}, TexCoord{}, Normal{}, errors.Wrapf(ErrIndexOutOfRange, "vertex %d of %d", idx.Vertex, len(o.Vertices))
	case t < 0 || t >= len(o.TexCoords):
		return Vertex{}, TexCoord{}, Normal{}, errors.Wrapf(ErrIndexOutOfRange, "texture %d of %d", idx.Texture, len(o.TexCoords))
	case n < 0 || n >= len(o.Normals):
		return Vertex{}, TexCoord{}, Normal{}, errors.Wrapf(ErrIndexOutOfRange, "normal %d of %d", idx.Normal, len(o.Normals))
	}
	return o.Vertices[v], o.TexCoords[t], o.Normals[n], nil
}
