// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/tools/godoc/vfs"

	"objmodel/conlog"
	"objmodel/pack"
)

var (
	baseDir string
	ns      = vfs.NameSpace{}
	packs   []*pack.Pack
	mutex   sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
	io.ReaderAt
}

type packFileSystem struct {
	p *pack.Pack
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

type fileInfo struct {
	name  string // base name of the file
	size  int64  // length in bytes for regular files
	isDir bool
}

func (f *fileInfo) Name() string {
	return f.name
}
func (f *fileInfo) Size() int64 {
	return f.size
}
func (f *fileInfo) Mode() fs.FileMode {
	if f.isDir {
		return fs.ModeDir | 0555
	}
	return 0444
}
func (f *fileInfo) ModTime() time.Time {
	return time.Time{}
}
func (f *fileInfo) IsDir() bool {
	return f.isDir
}
func (f *fileInfo) Sys() any {
	return nil
}

// inside a pack file there is no 'root'. all files are relative to '.'
func packPath(path string) string {
	return strings.TrimPrefix(pathpkg.Clean("/"+path), "/")
}

func (p packFileSystem) Open(path string) (vfs.ReadSeekCloser, error) {
	f, err := p.p.Open(packPath(path))
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return &closer{f}, nil
}

func (p packFileSystem) Stat(path string) (os.FileInfo, error) {
	name := packPath(path)
	if name == "" {
		return &fileInfo{name: "/", isDir: true}, nil
	}
	f, err := p.p.Open(name)
	if err == nil {
		return &fileInfo{name: pathpkg.Base(name), size: f.Size()}, nil
	}
	for _, n := range p.p.Names() {
		if strings.HasPrefix(n, name+"/") {
			return &fileInfo{name: pathpkg.Base(name), isDir: true}, nil
		}
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (p packFileSystem) Lstat(path string) (os.FileInfo, error) {
	return p.Stat(path)
}

// ReadDir lists the direct children of path. Directories only exist
// implicitly through the names of the entries below them.
func (p packFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	dir := packPath(path)
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}
	var r []os.FileInfo
	seen := make(map[string]bool)
	for _, n := range p.p.Names() {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		rest := strings.TrimPrefix(n, prefix)
		child, _, isDir := strings.Cut(rest, "/")
		if seen[child] {
			continue
		}
		seen[child] = true
		if isDir {
			r = append(r, &fileInfo{name: child, isDir: true})
			continue
		}
		f, err := p.p.Open(n)
		if err != nil {
			return nil, err
		}
		r = append(r, &fileInfo{name: child, size: f.Size()})
	}
	if len(r) == 0 && dir != "" {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}
	return r, nil
}

func (p packFileSystem) RootType(string) vfs.RootType {
	return ""
}

func (p packFileSystem) String() string {
	return p.p.String()
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir replaces the whole namespace by dir and its pak files.
func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	closePacks()
	baseDir = dir
	ns = vfs.NameSpace{}
	ns.Bind("/", vfs.OS(dir), "/", vfs.BindReplace)
	useDir(dir)
}

// AddDir puts dir and its pak files in front of everything bound so far.
func AddDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	ns.Bind("/", vfs.OS(dir), "/", vfs.BindBefore)
	useDir(dir)
}

// Reset forgets all bound directories and closes the pak files.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	closePacks()
	baseDir = ""
	ns = vfs.NameSpace{}
}

func closePacks() {
	for _, p := range packs {
		if err := p.Close(); err != nil {
			conlog.DPrintf("closing %s: %v\n", p, err)
		}
	}
	packs = nil
}

// useDir binds pak0.pak, pak1.pak, ... of dir until the first one missing.
// Higher numbers shadow lower ones.
func useDir(dir string) {
	for i := 0; ; i++ {
		pfp := filepath.Join(dir, fmt.Sprintf("pak%d.pak", i))
		p, err := pack.NewPackReader(pfp)
		if err != nil {
			if !os.IsNotExist(err) {
				conlog.Printf("skipping %s: %v\n", pfp, err)
			}
			break
		}
		conlog.DPrintf("added pack %s, %d files\n", pfp, len(p.Names()))
		packs = append(packs, p)
		ns.Bind("/", packFileSystem{p}, "/", vfs.BindBefore)
	}
}

func Stat(path string) (os.FileInfo, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	return ns.Stat(pathpkg.Join("/", path))
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	nf, err := ns.Open(pathpkg.Join("/", name))
	if err != nil {
		return nil, err
	}
	f, ok := nf.(File)
	if !ok {
		nf.Close()
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return f, nil
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
