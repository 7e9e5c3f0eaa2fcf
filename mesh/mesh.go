// SPDX-License-Identifier: GPL-2.0-or-later

package mesh

import (
	"context"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"objmodel/obj"
)

// Layout of one interleaved vertex in a GPU buffer.
const (
	FloatsPerVertex = 4 + 2 + 3
	Stride          = FloatsPerVertex * 4 // bytes

	PositionOffset = 0
	TexCoordOffset = 4 * 4
	NormalOffset   = (4 + 2) * 4
)

type Vertex struct {
	Pos  mgl32.Vec4
	Tex  mgl32.Vec2
	Norm mgl32.Vec3
}

// Mesh is the flat triangle list of one object, three vertices per
// triangle.
type Mesh struct {
	ID       uuid.UUID
	Name     string
	Vertices []Vertex
}

// Source is anything that can expand named objects into triangles.
type Source interface {
	Objects() []string
	ProduceTriangles(name string, fn obj.TriangleFunc) error
}

type Options struct {
	// FlipV stores 1-v as texture coordinate. Images are uploaded top row
	// first while the file counts v from the bottom.
	FlipV bool
	// Workers limits BuildAll. Zero or less uses GOMAXPROCS.
	Workers int
}

// Collector buffers the triangle stream of one object.
type Collector struct {
	FlipV    bool
	Vertices []Vertex
}

func (c *Collector) HandleVertex(v obj.Vertex, t obj.TexCoord, n obj.Normal) {
	tv := t.V
	if c.FlipV {
		tv = 1 - tv
	}
	c.Vertices = append(c.Vertices, Vertex{
		Pos:  mgl32.Vec4{v.X, v.Y, v.Z, v.W},
		Tex:  mgl32.Vec2{t.U, tv},
		Norm: mgl32.Vec3{n.X, n.Y, n.Z},
	})
}

// Build expands the object name of src. Nothing is returned unless the
// whole object expanded without error.
func Build(src Source, name string, opts Options) (*Mesh, error) {
	c := Collector{FlipV: opts.FlipV}
	if err := src.ProduceTriangles(name, c.HandleVertex); err != nil {
		return nil, err
	}
	return &Mesh{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     name,
		Vertices: c.Vertices,
	}, nil
}

// BuildAll expands every object of src in parallel. src must not change
// while BuildAll runs.
func BuildAll(ctx context.Context, src Source, opts Options) (map[string]*Mesh, error) {
	names := src.Objects()
	meshes := make([]*Mesh, len(names))
	g, ctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)
	for i, n := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Build(src, n, opts)
			if err != nil {
				return err
			}
			meshes[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r := make(map[string]*Mesh, len(names))
	for _, m := range meshes {
		r[m.Name] = m
	}
	return r, nil
}

// Place appends the vertices of src to dst, positions scaled by scale and
// moved by offset.
func Place(src []Vertex, offset mgl32.Vec4, scale float32, dst []Vertex) []Vertex {
	for _, v := range src {
		p := v.Pos.Vec3().Mul(scale)
		v.Pos = mgl32.Vec4{p.X(), p.Y(), p.Z(), v.Pos.W()}.Add(offset)
		dst = append(dst, v)
	}
	return dst
}

// Floats interleaves the vertices for a vertex buffer, see Stride and the
// attribute offsets.
func (m *Mesh) Floats() []float32 {
	r := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		r = append(r, v.Pos[:]...)
		r = append(r, v.Tex[:]...)
		r = append(r, v.Norm[:]...)
	}
	return r
}

// TriangleCount is the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Bounds returns the box around all positions.
func (m *Mesh) Bounds() (mins, maxs mgl32.Vec3) {
	for i, v := range m.Vertices {
		p := v.Pos.Vec3()
		if i == 0 {
			mins, maxs = p, p
			continue
		}
		for k := 0; k < 3; k++ {
			mins[k] = min(mins[k], p[k])
			maxs[k] = max(maxs[k], p[k])
		}
	}
	return mins, maxs
}
