// SPDX-License-Identifier: GPL-2.0-or-later

package mesh

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"objmodel/obj"
)

const track = `o Horizontal
v 0 0 0
v 2 0 0
v 2 0 2
vt 0 0.25
vt 1 0
vt 1 1
vn 0 1 0
f 1/1/1 2/2/1 3/3/1
o Vertical
v 0 0 0
v 0 0 4
v -1 3 4
vt 0 0
vn 1 0 0
f 1/1/1 2/1/1 3/1/1
f 3/1/1 2/1/1 1/1/1
`

func testFile(t *testing.T, text string) *obj.File {
	t.Helper()
	f, err := obj.Parse("track.obj", text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestBuild(t *testing.T) {
	f := testFile(t, track)
	for _, tc := range []struct {
		flip bool
		want mgl32.Vec2
	}{
		{false, mgl32.Vec2{0, 0.25}},
		{true, mgl32.Vec2{0, 0.75}},
	} {
		m, err := Build(f, "Horizontal", Options{FlipV: tc.flip})
		if err != nil {
			t.Fatal(err)
		}
		if m.Name != "Horizontal" || len(m.Vertices) != 3 || m.TriangleCount() != 1 {
			t.Fatalf("Build = %q with %d vertices", m.Name, len(m.Vertices))
		}
		if got := m.Vertices[0].Tex; got != tc.want {
			t.Errorf("FlipV %v: Tex = %v, want %v", tc.flip, got, tc.want)
		}
		want := Vertex{
			Pos:  mgl32.Vec4{2, 0, 2, 1},
			Tex:  mgl32.Vec2{1, 1},
			Norm: mgl32.Vec3{0, 1, 0},
		}
		if tc.flip {
			want.Tex = mgl32.Vec2{1, 0}
		}
		if got := m.Vertices[2]; got != want {
			t.Errorf("FlipV %v: Vertices[2] = %v, want %v", tc.flip, got, want)
		}
	}
}

func TestBuildIDs(t *testing.T) {
	f := testFile(t, track)
	a, err := Build(f, "Horizontal", Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(f, "Horizontal", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Errorf("two builds share the id %v", a.ID)
	}
}

func TestBuildErrors(t *testing.T) {
	f := testFile(t, track+"o Broken\nv 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 2/1/1\n")
	if m, err := Build(f, "Missing", Options{}); !errors.Is(err, obj.ErrNotFound) || m != nil {
		t.Errorf("Build(Missing) = %v, %v, want %v", m, err, obj.ErrNotFound)
	}
	if m, err := Build(f, "Broken", Options{}); !errors.Is(err, obj.ErrIndexOutOfRange) || m != nil {
		t.Errorf("Build(Broken) = %v, %v, want %v", m, err, obj.ErrIndexOutOfRange)
	}
	if _, err := BuildAll(context.Background(), f, Options{}); !errors.Is(err, obj.ErrIndexOutOfRange) {
		t.Errorf("BuildAll = %v, want %v", err, obj.ErrIndexOutOfRange)
	}
}

func TestBuildAll(t *testing.T) {
	f := testFile(t, track)
	ms, err := BuildAll(context.Background(), f, Options{FlipV: true, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]int{"Horizontal": 3, "Vertical": 6} {
		m, ok := ms[name]
		if !ok {
			t.Errorf("BuildAll has no %q", name)
			continue
		}
		if len(m.Vertices) != want {
			t.Errorf("%q has %d vertices, want %d", name, len(m.Vertices), want)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := BuildAll(ctx, f, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("BuildAll(canceled) = %v", err)
	}
}

func TestFloats(t *testing.T) {
	m := &Mesh{Vertices: []Vertex{
		{mgl32.Vec4{1, 2, 3, 1}, mgl32.Vec2{4, 5}, mgl32.Vec3{6, 7, 8}},
		{mgl32.Vec4{9, 10, 11, 1}, mgl32.Vec2{12, 13}, mgl32.Vec3{14, 15, 16}},
	}}
	got := m.Floats()
	want := []float32{1, 2, 3, 1, 4, 5, 6, 7, 8, 9, 10, 11, 1, 12, 13, 14, 15, 16}
	if len(got) != len(want) {
		t.Fatalf("Floats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Floats()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got[TexCoordOffset/4] != 4 || got[NormalOffset/4] != 6 || got[Stride/4] != 9 {
		t.Errorf("offsets do not match the layout: %v", got)
	}
}

func TestPlace(t *testing.T) {
	src := []Vertex{
		{Pos: mgl32.Vec4{1, 2, 3, 1}, Tex: mgl32.Vec2{0.5, 0.5}},
		{Pos: mgl32.Vec4{-1, 0, 1, 1}},
	}
	dst := Place(src, mgl32.Vec4{60, 0, 120, 0}, 10, nil)
	want := []mgl32.Vec4{{70, 20, 150, 1}, {50, 0, 130, 1}}
	if len(dst) != len(want) {
		t.Fatalf("Place = %v", dst)
	}
	for i := range want {
		if dst[i].Pos != want[i] {
			t.Errorf("Place[%d].Pos = %v, want %v", i, dst[i].Pos, want[i])
		}
	}
	if dst[0].Tex != src[0].Tex {
		t.Errorf("Place changed the texture coordinate")
	}
	if src[0].Pos != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Errorf("Place modified its source")
	}
}

func TestBounds(t *testing.T) {
	f := testFile(t, track)
	m, err := Build(f, "Vertical", Options{})
	if err != nil {
		t.Fatal(err)
	}
	mi, ma := m.Bounds()
	if want := (mgl32.Vec3{-1, 0, 0}); mi != want {
		t.Errorf("mins = %v, want %v", mi, want)
	}
	if want := (mgl32.Vec3{0, 3, 4}); ma != want {
		t.Errorf("maxs = %v, want %v", ma, want)
	}
}
