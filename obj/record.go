// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseFloats fills dst from the whitespace separated tokens of s.
// Missing tokens keep the preset value of dst, extra tokens are ignored.
func parseFloats(s string, dst []float32) error {
	fields := strings.Fields(s)
	for i := 0; i < len(dst) && i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return errors.Wrapf(ErrFormat, "number %q", fields[i])
		}
		dst[i] = float32(v)
	}
	return nil
}

// ParseVertex reads "x y z". W is always 1.
func ParseVertex(s string) (Vertex, error) {
	var f [3]float32
	if err := parseFloats(s, f[:]); err != nil {
		return Vertex{}, err
	}
	return Vertex{X: f[0], Y: f[1], Z: f[2], W: 1}, nil
}

// ParseTexCoord reads "u v".
func ParseTexCoord(s string) (TexCoord, error) {
	var f [2]float32
	if err := parseFloats(s, f[:]); err != nil {
		return TexCoord{}, err
	}
	return TexCoord{U: f[0], V: f[1]}, nil
}

// ParseNormal reads "x y z".
func ParseNormal(s string) (Normal, error) {
	var f [3]float32
	if err := parseFloats(s, f[:]); err != nil {
		return Normal{}, err
	}
	return Normal{X: f[0], Y: f[1], Z: f[2]}, nil
}

// ParseFace reads the space separated corners of a face, each in the form
// v, v/t, v//n or v/t/n.
func ParseFace(s string) (Face, error) {
	var f Face
	for _, corner := range Split(s, ' ') {
		if corner == "" {
			continue
		}
		idx, err := parseIndices(corner)
		if err != nil {
			return Face{}, err
		}
		f.Indices = append(f.Indices, idx)
	}
	return f, nil
}

func parseIndices(corner string) (Indices, error) {
	var r [3]int
	parts := Split(corner, '/')
	if len(parts) > len(r) {
		return Indices{}, errors.Wrapf(ErrFormat, "corner %q has more than 3 indices", corner)
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Indices{}, errors.Wrapf(ErrFormat, "corner %q index %q", corner, p)
		}
		r[i] = v
	}
	if r[0] == 0 {
		return Indices{}, errors.Wrapf(ErrFormat, "corner %q without vertex index", corner)
	}
	return Indices{Vertex: r[0], Texture: r[1], Normal: r[2]}, nil
}
