// SPDX-License-Identifier: GPL-2.0-or-later

package mesh

import (
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Wire layout of a cached mesh:
//
//	message Mesh {
//	  bytes  id     = 1; // 16 byte uuid
//	  string name   = 2;
//	  uint32 stride = 3; // floats per vertex
//	  repeated float data = 4 [packed = true];
//	}
const (
	idField     protowire.Number = 1
	nameField   protowire.Number = 2
	strideField protowire.Number = 3
	dataField   protowire.Number = 4

	cacheExt = ".mesh"
)

var ErrCorrupt = errors.New("corrupt mesh data")

// Marshal encodes m in protobuf wire format.
func Marshal(m *Mesh) []byte {
	fl := m.Floats()
	b := make([]byte, 0, 64+len(m.Name)+4*len(fl))
	b = protowire.AppendTag(b, idField, protowire.BytesType)
	b = protowire.AppendBytes(b, m.ID[:])
	b = protowire.AppendTag(b, nameField, protowire.BytesType)
	b = protowire.AppendString(b, m.Name)
	b = protowire.AppendTag(b, strideField, protowire.VarintType)
	b = protowire.AppendVarint(b, FloatsPerVertex)
	if len(fl) > 0 {
		b = protowire.AppendTag(b, dataField, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(4*len(fl)))
		for _, f := range fl {
			b = protowire.AppendFixed32(b, math.Float32bits(f))
		}
	}
	return b
}

// Unmarshal decodes the output of Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (*Mesh, error) {
	m := &Mesh{}
	var data []float32
	stride := uint64(FloatsPerVertex)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(ErrCorrupt, protowire.ParseError(n).Error())
		}
		b = b[n:]
		switch {
		case num == idField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, errors.Wrap(ErrCorrupt, protowire.ParseError(n).Error())
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return nil, errors.Wrap(ErrCorrupt, err.Error())
			}
			m.ID = id
			b = b[n:]
		case num == nameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, errors.Wrap(ErrCorrupt, protowire.ParseError(n).Error())
			}
			m.Name = v
			b = b[n:]
		case num == strideField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, errors.Wrap(ErrCorrupt, protowire.ParseError(n).Error())
			}
			stride = v
			b = b[n:]
		case num == dataField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, errors.Wrap(ErrCorrupt, protowire.ParseError(n).Error())
			}
			if len(v)%4 != 0 {
				return nil, errors.Wrap(ErrCorrupt, "packed float length")
			}
			for len(v) > 0 {
				f, k := protowire.ConsumeFixed32(v)
				data = append(data, math.Float32frombits(f))
				v = v[k:]
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, errors.Wrap(ErrCorrupt, protowire.ParseError(n).Error())
			}
			b = b[n:]
		}
	}
	if stride != FloatsPerVertex {
		return nil, errors.Wrapf(ErrCorrupt, "stride %d", stride)
	}
	if len(data)%FloatsPerVertex != 0 {
		return nil, errors.Wrapf(ErrCorrupt, "%d floats", len(data))
	}
	m.Vertices = make([]Vertex, 0, len(data)/FloatsPerVertex)
	for i := 0; i < len(data); i += FloatsPerVertex {
		d := data[i : i+FloatsPerVertex]
		var v Vertex
		copy(v.Pos[:], d[0:4])
		copy(v.Tex[:], d[4:6])
		copy(v.Norm[:], d[6:9])
		m.Vertices = append(m.Vertices, v)
	}
	return m, nil
}

// FileName maps an object name to its cache file name. Distinct names
// give distinct files: the name is path escaped, a leading '.' becomes
// "%2E" and the empty name becomes "%".
func FileName(name string) string {
	e := strings.ReplaceAll(url.PathEscape(name), ":", "%3A")
	switch {
	case e == "":
		e = "%"
	case e[0] == '.':
		e = "%2E" + e[1:]
	}
	return e + cacheExt
}

// Save writes m into dir.
func Save(dir string, m *Mesh) error {
	fullname := filepath.Join(dir, FileName(m.Name))
	if err := os.WriteFile(fullname, Marshal(m), 0660); err != nil {
		return errors.Wrapf(err, "failed to write mesh %q", m.Name)
	}
	return nil
}

// Load reads the mesh saved for name from dir.
func Load(dir, name string) (*Mesh, error) {
	fullname := filepath.Join(dir, FileName(name))
	in, err := os.ReadFile(fullname)
	if err != nil {
		return nil, err
	}
	m, err := Unmarshal(in)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", fullname)
	}
	return m, nil
}
