// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"objmodel/math/vec"
)

// Bounds returns the axis aligned box around all vertices. An object
// without vertices has empty bounds at the origin.
func (o *Object) Bounds() (mins, maxs vec.Vec3) {
	for i, v := range o.Vertices {
		p := vec.Vec3{X: v.X, Y: v.Y, Z: v.Z}
		if i == 0 {
			mins, maxs = p, p
			continue
		}
		mins = vec.Min(mins, p)
		maxs = vec.Max(maxs, p)
	}
	return mins, maxs
}

// Bounds returns the box around every object of the file.
func (f *File) Bounds() (mins, maxs vec.Vec3) {
	first := true
	for _, n := range f.names {
		o := f.objects[n]
		if len(o.Vertices) == 0 {
			continue
		}
		mi, ma := o.Bounds()
		if first {
			mins, maxs = mi, ma
			first = false
			continue
		}
		mins = vec.Min(mins, mi)
		maxs = vec.Max(maxs, ma)
	}
	return mins, maxs
}

func (f *File) Mins() vec.Vec3 {
	m, _ := f.Bounds()
	return m
}

func (f *File) Maxs() vec.Vec3 {
	_, m := f.Bounds()
	return m
}
