// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"testing"
)

func TestDPrintf(t *testing.T) {
	var got []string
	SetPrintf(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	defer SetPrintf(nil)
	defer SetDeveloper(false)

	Printf("a %d\n", 1)
	DPrintf("hidden\n")
	SetDeveloper(true)
	DPrintf("b %s\n", "x")

	want := []string{"a 1\n", "b x\n"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
