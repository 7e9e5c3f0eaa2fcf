// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"testing"

	"objmodel/cmd"
)

func TestRegister(t *testing.T) {
	cv := MustRegister("test_scale", "2.5", ARCHIVE)
	if cv.Value() != 2.5 || cv.String() != "2.5" || !cv.Archive() {
		t.Errorf("test_scale = %v %q %v", cv.Value(), cv.String(), cv.Archive())
	}
	if _, err := Register("test_scale", "1", NONE); err == nil {
		t.Errorf("second Register did not fail")
	}
	cv.SetValue(3)
	if cv.String() != "3" {
		t.Errorf("SetValue(3) = %q", cv.String())
	}
	cv.SetValue(0.25)
	if cv.String() != "0.25" {
		t.Errorf("SetValue(0.25) = %q", cv.String())
	}
	cv.Reset()
	if cv.Value() != 2.5 {
		t.Errorf("Reset() = %v", cv.Value())
	}
	if got, ok := Get("test_scale"); !ok || got != cv {
		t.Errorf("Get(test_scale) = %v, %v", got, ok)
	}
}

func TestROM(t *testing.T) {
	cv := MustRegister("test_rom", "1", ROM)
	cv.SetByString("0")
	if !cv.Bool() {
		t.Errorf("read-only cvar changed")
	}
}

func TestCallback(t *testing.T) {
	cv := MustRegister("test_developer", "0", NONE)
	var seen []bool
	cv.SetCallback(func(cv *Cvar) { seen = append(seen, cv.Bool()) })
	cv.Toggle()
	cv.Toggle()
	want := []bool{false, true, false}
	if len(seen) != len(want) {
		t.Fatalf("callback saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback %d saw %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestCommands(t *testing.T) {
	c := cmd.New()
	if err := AddCommands(c); err != nil {
		t.Fatal(err)
	}
	cv := MustRegister("test_flip", "1", NONE)
	if err := c.ExecuteText("toggle test_flip;set test_user hello"); err != nil {
		t.Fatal(err)
	}
	if cv.Bool() {
		t.Errorf("toggle did not clear test_flip")
	}
	u, ok := Get("test_user")
	if !ok || u.String() != "hello" || !u.UserDefined() {
		t.Errorf("set created %v, %v", u, ok)
	}
	if err := c.ExecuteText("reset test_flip"); err != nil {
		t.Fatal(err)
	}
	if !cv.Bool() {
		t.Errorf("reset did not restore test_flip")
	}
	if err := c.ExecuteText("set toggle 1"); err == nil {
		t.Errorf("set of a command name did not fail")
	}
	if err := c.ExecuteText("toggle test_missing"); err == nil {
		t.Errorf("toggle of a missing cvar did not fail")
	}
	if ok, _ := Execute(cmd.Parse("test_flip 0")); !ok || cv.Bool() {
		t.Errorf("Execute(test_flip 0) = %v, value %q", ok, cv.String())
	}
}
