// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []QArg
	}{
		{
			in:     `objects track.obj`,
			wantF:  `objects track.obj`,
			wantAS: `track.obj`,
			wantA:  []QArg{{"objects"}, {"track.obj"}},
		},
		{
			in:     `bounds "my track.obj" Cube`,
			wantF:  `bounds "my track.obj" Cube`,
			wantAS: `my track.obj" Cube`,
			wantA:  []QArg{{"bounds"}, {"my track.obj"}, {"Cube"}},
		},
		{
			in:     ` set  developer 1 // verbose `,
			wantF:  `set  developer 1 // verbose`,
			wantAS: `developer 1 // verbose`,
			wantA:  []QArg{{"set"}, {"developer"}, {"1"}},
		},
		{
			in:     "",
			wantF:  "",
			wantAS: "",
			wantA:  []QArg{},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestQArg(t *testing.T) {
	a := FromArgs([]string{"inc", "12", "0.5", "on"})
	if got := a.Argv(1).Int(); got != 12 {
		t.Errorf("Int() = %v", got)
	}
	if got := a.Argv(2).Float32(); got != 0.5 {
		t.Errorf("Float32() = %v", got)
	}
	if !a.Argv(3).Bool() || a.Argv(0).Bool() {
		t.Errorf("Bool() wrong")
	}
	if got := a.Argv(7).String(); got != "" {
		t.Errorf("Argv(7) = %q, want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("objects a.obj;bounds a.obj\nset name \"x;y\"\n\ntriangles a.obj Cube")
	want := []string{"objects a.obj", "bounds a.obj", `set name "x;y"`, "", "triangles a.obj Cube"}
	if len(got) != len(want) {
		t.Fatalf("SplitLines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
