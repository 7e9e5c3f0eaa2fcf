// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

const (
	entrySize  = 64 // binary.Size(entry{})
	headerSize = 12 // binary.Size(header{})

	maxSizeHint = 1024
)

var (
	magic = [4]byte{'P', 'A', 'C', 'K'}

	ErrNotPack   = errors.New("not a pack")
	ErrDuplicate = errors.New("files in pack are not unique")
	ErrName      = errors.New("name does not fit into a pack entry")
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

type Pack struct {
	r     io.ReaderAt
	c     io.Closer
	files map[string]*qfile
	name  string
}

type qfile struct {
	offset int64
	size   int64
}

// Open returns a io.SectionReader or os.ErrNotExist if the pak has no entry
// with the provided name.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(p.r, q.offset, q.size), nil
}

// Names returns the sorted entry names.
func (p *Pack) Names() []string {
	n := make([]string, 0, len(p.files))
	for k := range p.files {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	if p.c == nil {
		return nil
	}
	return p.c.Close()
}

func (p *Pack) init() error {
	var hb [headerSize]byte
	if _, err := p.r.ReadAt(hb[:], 0); err != nil {
		return errors.Wrap(ErrNotPack, err.Error())
	}
	var h header
	if err := binary.Read(bytes.NewReader(hb[:]), binary.LittleEndian, &h); err != nil {
		return err
	}
	if h.ID != magic {
		return ErrNotPack
	}
	if h.Offset < 0 || h.Size < 0 {
		return errors.Wrap(ErrNotPack, "negative directory")
	}
	filenum := h.Size / entrySize
	dir := io.NewSectionReader(p.r, int64(h.Offset), int64(filenum)*entrySize)
	// the directory size is only a hint until the entries are read
	p.files = make(map[string]*qfile, min(filenum, maxSizeHint))
	for i := int32(0); i < filenum; i++ {
		var e entry
		if err := binary.Read(dir, binary.LittleEndian, &e); err != nil {
			return errors.Wrapf(err, "directory entry %d", i)
		}
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		name := string(e.Name[:n])
		if p.files[name] != nil {
			return errors.Wrap(ErrDuplicate, name)
		}
		p.files[name] = &qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

// NewReader reads the pack directory from r. name is used by String.
func NewReader(name string, r io.ReaderAt) (*Pack, error) {
	p := &Pack{r: r, name: name}
	if err := p.init(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}

// NewPackReader opens the pack file name.
func NewPackReader(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p, err := NewReader(name, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	p.c = f
	return p, nil
}
