// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"objmodel/filesystem"
)

var (
	mutex   sync.RWMutex
	loaders = make(map[string]LoadFunc)
)

// ErrUnknownFormat is returned for files no loader is registered for.
var ErrUnknownFormat = errors.New("unknown file format")

type LoadFunc func(name string, data []byte) (Model, error)

// Register makes f the loader for files ending in ext, e.g. ".obj".
func Register(ext string, f LoadFunc) {
	mutex.Lock()
	defer mutex.Unlock()
	loaders[strings.ToLower(ext)] = f
}

func loader(name string) (LoadFunc, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	f, ok := loaders[strings.ToLower(filesystem.Ext(name))]
	return f, ok
}

// Load reads name from the filesystem and hands it to the loader of its
// extension.
func Load(name string) (Model, error) {
	if _, ok := loader(name); !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "file %s", name)
	}
	data, err := filesystem.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(name, data)
}

// Parse decodes data that was read elsewhere, picking the loader by the
// extension of name.
func Parse(name string, data []byte) (Model, error) {
	f, ok := loader(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "file %s", name)
	}
	m, err := f(name, data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	return m, nil
}

// Formats lists the registered extensions.
func Formats() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	r := make([]string, 0, len(loaders))
	for e := range loaders {
		r = append(r, e)
	}
	sort.Strings(r)
	return r
}
