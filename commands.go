// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"objmodel/cmd"
	"objmodel/cvar"
	"objmodel/filesystem"
	"objmodel/mesh"
	"objmodel/model"
	"objmodel/obj"
	"objmodel/pack"
)

// meshDir holds meshes inside pack files.
const meshDir = "meshes"

var (
	cvarDeveloper = cvar.MustRegister("developer", "0", cvar.NONE)
	cvarFlipV     = cvar.MustRegister("mesh_flipv", "0", cvar.ARCHIVE)
	cvarCache     = cvar.MustRegister("mesh_cache", "", cvar.ARCHIVE)
	cvarWorkers   = cvar.MustRegister("mesh_workers", "0", cvar.ARCHIVE)
)

type tool struct {
	out  io.Writer
	cmds *cmd.Commands
}

func newTool(out io.Writer) (*tool, error) {
	t := &tool{out: out, cmds: cmd.New()}
	for n, f := range map[string]cmd.QFunc{
		"objects":   t.objects,
		"triangles": t.triangles,
		"bounds":    t.bounds,
		"export":    t.export,
		"import":    t.importMesh,
		"pak":       t.pak,
		"formats":   t.formats,
		"cmdlist":   t.cmdList,
	} {
		if err := t.cmds.Add(n, f); err != nil {
			return nil, err
		}
	}
	if err := cvar.AddCommands(t.cmds); err != nil {
		return nil, err
	}
	return t, nil
}

// run executes every command line of text. Lines naming a cvar read or
// set it.
func (t *tool) run(text string) error {
	for _, l := range cmd.SplitLines(text) {
		a := cmd.Parse(l)
		if err := t.execute(a); err != nil {
			return err
		}
	}
	return nil
}

func (t *tool) execute(a cmd.Arguments) error {
	if len(a.Args()) == 0 {
		return nil
	}
	if ok, err := t.cmds.Execute(a); ok {
		return err
	}
	if ok, err := cvar.Execute(a); ok {
		return err
	}
	return errors.Wrap(cmd.ErrUnknownCommand, a.Argv(0).String())
}

func (t *tool) options() mesh.Options {
	return mesh.Options{
		FlipV:   cvarFlipV.Bool(),
		Workers: int(cvarWorkers.Value()),
	}
}

func loadFile(name string) (*obj.File, error) {
	m, err := model.Load(name)
	if err != nil {
		return nil, err
	}
	f, ok := m.(*obj.File)
	if !ok {
		return nil, errors.Errorf("%s is no obj file", name)
	}
	return f, nil
}

func usage(a cmd.Arguments, min int, text string) error {
	if len(a.Args()) < min+1 {
		return errors.Errorf("usage: %s %s", a.Argv(0).String(), text)
	}
	return nil
}

func (t *tool) objects(a cmd.Arguments) error {
	if err := usage(a, 1, "<file>"); err != nil {
		return err
	}
	f, err := loadFile(a.Argv(1).String())
	if err != nil {
		return err
	}
	for _, n := range f.Objects() {
		o, err := f.Object(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(t.out, "%q: %d vertices, %d texcoords, %d normals, %d faces\n",
			n, len(o.Vertices), len(o.TexCoords), len(o.Normals), len(o.Faces))
	}
	fmt.Fprintf(t.out, "%d objects\n", f.ObjectCount())
	return nil
}

func (t *tool) triangles(a cmd.Arguments) error {
	if err := usage(a, 2, "<file> <object>"); err != nil {
		return err
	}
	f, err := loadFile(a.Argv(1).String())
	if err != nil {
		return err
	}
	m, err := mesh.Build(f, a.Argv(2).String(), t.options())
	if err != nil {
		return err
	}
	for i, v := range m.Vertices {
		if i%3 == 0 {
			fmt.Fprintf(t.out, "triangle %d\n", i/3)
		}
		fmt.Fprintf(t.out, "  v %v vt %v vn %v\n", v.Pos, v.Tex, v.Norm)
	}
	fmt.Fprintf(t.out, "%d triangles\n", m.TriangleCount())
	return nil
}

func (t *tool) bounds(a cmd.Arguments) error {
	if err := usage(a, 1, "<file> [object]"); err != nil {
		return err
	}
	f, err := loadFile(a.Argv(1).String())
	if err != nil {
		return err
	}
	mins, maxs := f.Bounds()
	if len(a.Args()) > 2 {
		o, err := f.Object(a.Argv(2).String())
		if err != nil {
			return err
		}
		mins, maxs = o.Bounds()
	}
	fmt.Fprintf(t.out, "mins %v %v %v\n", mins.X, mins.Y, mins.Z)
	fmt.Fprintf(t.out, "maxs %v %v %v\n", maxs.X, maxs.Y, maxs.Z)
	return nil
}

func cacheDir() (string, error) {
	dir := cvarCache.String()
	if dir == "" {
		return "", errors.New("mesh_cache is not set")
	}
	return dir, nil
}

func (t *tool) export(a cmd.Arguments) error {
	if err := usage(a, 1, "<file> [object]"); err != nil {
		return err
	}
	dir, err := cacheDir()
	if err != nil {
		return err
	}
	f, err := loadFile(a.Argv(1).String())
	if err != nil {
		return err
	}
	var meshes []*mesh.Mesh
	if len(a.Args()) > 2 {
		m, err := mesh.Build(f, a.Argv(2).String(), t.options())
		if err != nil {
			return err
		}
		meshes = append(meshes, m)
	} else {
		all, err := mesh.BuildAll(context.Background(), f, t.options())
		if err != nil {
			return err
		}
		for _, m := range all {
			meshes = append(meshes, m)
		}
		sort.Slice(meshes, func(i, j int) bool { return meshes[i].Name < meshes[j].Name })
	}
	if err := os.MkdirAll(dir, 0770); err != nil {
		return errors.Wrap(err, "mesh cache")
	}
	for _, m := range meshes {
		if err := mesh.Save(dir, m); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "saved %q %v, %d triangles\n", m.Name, m.ID, m.TriangleCount())
	}
	return nil
}

// loadMesh reads name from the mesh cache, falling back to the meshes/
// directory of the filesystem.
func loadMesh(name string) (*mesh.Mesh, error) {
	if dir := cvarCache.String(); dir != "" {
		m, err := mesh.Load(dir, name)
		if !errors.Is(err, os.ErrNotExist) {
			return m, err
		}
	}
	fn := path.Join(meshDir, mesh.FileName(name))
	b, err := filesystem.ReadFile(fn)
	if err != nil {
		return nil, errors.Wrapf(err, "mesh %q", name)
	}
	m, err := mesh.Unmarshal(b)
	if err != nil {
		return nil, errors.Wrap(err, fn)
	}
	return m, nil
}

func (t *tool) importMesh(a cmd.Arguments) error {
	if err := usage(a, 1, "<object>"); err != nil {
		return err
	}
	m, err := loadMesh(a.Argv(1).String())
	if err != nil {
		return err
	}
	mins, maxs := m.Bounds()
	fmt.Fprintf(t.out, "%q %v, %d triangles\n", m.Name, m.ID, m.TriangleCount())
	fmt.Fprintf(t.out, "mins %v %v %v\n", mins[0], mins[1], mins[2])
	fmt.Fprintf(t.out, "maxs %v %v %v\n", maxs[0], maxs[1], maxs[2])
	return nil
}

// pak bundles every cached mesh into a pack file below meshes/.
func (t *tool) pak(a cmd.Arguments) error {
	if err := usage(a, 1, "<file.pak>"); err != nil {
		return err
	}
	dir, err := cacheDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "mesh cache")
	}
	var buf bytes.Buffer
	w := pack.NewWriter(&buf)
	n := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".mesh" {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		if err := w.Add(path.Join(meshDir, e.Name()), b); err != nil {
			return err
		}
		n++
	}
	if err := w.Close(); err != nil {
		return err
	}
	out := a.Argv(1).String()
	if err := os.WriteFile(out, buf.Bytes(), 0660); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	fmt.Fprintf(t.out, "wrote %s, %d meshes\n", out, n)
	return nil
}

func (t *tool) formats(_ cmd.Arguments) error {
	for _, f := range model.Formats() {
		fmt.Fprintln(t.out, f)
	}
	return nil
}

func (t *tool) cmdList(_ cmd.Arguments) error {
	for _, c := range t.cmds.List() {
		fmt.Fprintln(t.out, c)
	}
	return nil
}
