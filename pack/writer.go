// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer collects files and writes the pack on Close. The header needs the
// directory offset, so nothing reaches w before that.
type Writer struct {
	w       io.Writer
	data    bytes.Buffer
	entries []entry
	seen    map[string]bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, seen: make(map[string]bool)}
}

// Add stores data as name.
func (w *Writer) Add(name string, data []byte) error {
	var e entry
	if len(name) == 0 || len(name) >= len(e.Name) {
		return errors.Wrap(ErrName, name)
	}
	if w.seen[name] {
		return errors.Wrap(ErrDuplicate, name)
	}
	w.seen[name] = true
	copy(e.Name[:], name)
	e.Offset = int32(headerSize + w.data.Len())
	e.Size = int32(len(data))
	w.data.Write(data)
	w.entries = append(w.entries, e)
	return nil
}

// Close writes header, file data and directory. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	h := header{
		ID:     magic,
		Offset: int32(headerSize + w.data.Len()),
		Size:   int32(len(w.entries) * entrySize),
	}
	if err := binary.Write(w.w, binary.LittleEndian, &h); err != nil {
		return err
	}
	if _, err := w.w.Write(w.data.Bytes()); err != nil {
		return err
	}
	return binary.Write(w.w, binary.LittleEndian, w.entries)
}
