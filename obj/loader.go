// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"bytes"

	"objmodel/model"
)

func init() {
	model.Register(".obj", load)
}

func load(name string, data []byte) (model.Model, error) {
	f, err := Decode(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return f, nil
}
