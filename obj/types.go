// SPDX-License-Identifier: GPL-2.0-or-later

package obj

type Vertex struct {
	X, Y, Z, W float32
}

func (v Vertex) Equals(o Vertex) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

type TexCoord struct {
	U, V float32
}

func (t TexCoord) Equals(o TexCoord) bool {
	return t.U == o.U && t.V == o.V
}

type Normal struct {
	X, Y, Z float32
}

func (n Normal) Equals(o Normal) bool {
	return n.X == o.X && n.Y == o.Y && n.Z == o.Z
}

// Indices are the 1-based table positions of one face corner.
// The value 0 marks a component the corner did not provide, e.g. the
// texture of "3//1" or texture and normal of "3".
type Indices struct {
	Vertex  int
	Texture int
	Normal  int
}

// HasTexture reports whether the corner names a texture coordinate.
func (i Indices) HasTexture() bool {
	return i.Texture != 0
}

// HasNormal reports whether the corner names a vertex normal.
func (i Indices) HasNormal() bool {
	return i.Normal != 0
}

type Face struct {
	Indices []Indices
}

func (f Face) Equals(o Face) bool {
	if len(f.Indices) != len(o.Indices) {
		return false
	}
	for i := range f.Indices {
		if f.Indices[i] != o.Indices[i] {
			return false
		}
	}
	return true
}

// Object owns the attribute tables of one named 'o' block.
type Object struct {
	Vertices  []Vertex
	TexCoords []TexCoord
	Normals   []Normal
	Faces     []Face
}

// TriangleFunc receives the fully resolved attributes of one triangle corner.
type TriangleFunc func(Vertex, TexCoord, Normal)

// TriangleCollector is the interface form of TriangleFunc.
type TriangleCollector interface {
	HandleVertex(Vertex, TexCoord, Normal)
}
