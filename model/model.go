// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"objmodel/math/vec"
)

// Model is a loaded geometry file made of named objects.
type Model interface {
	Name() string
	Objects() []string
	Mins() vec.Vec3
	Maxs() vec.Vec3
}
