// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"log"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"objmodel/cmd"
	"objmodel/conlog"
)

var (
	mutex      sync.RWMutex
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	NONE    flag = 0
	ARCHIVE flag = 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
}

// All returns the variables in registration order.
func All() []*Cvar {
	mutex.RLock()
	defer mutex.RUnlock()
	return append([]*Cvar(nil), cvarArray...)
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

// SetCallback installs cb and calls it once with the current value.
func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
	if cb != nil {
		cb(cv)
	}
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		cv.SetByString(strconv.FormatInt(int64(value), 10))
	} else {
		cv.SetByString(strconv.FormatFloat(float64(value), 'f', -1, 32))
	}
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

func Get(name string) (*Cvar, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	cv, ok := cvarByName[name]
	return cv, ok
}

// create expects mutex to be held.
func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value, stringValue: value}
	pf, _ := strconv.ParseFloat(value, 32)
	cv.value = float32(pf)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	mutex.Lock()
	defer mutex.Unlock()
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}
	cv := create(name, value)
	cv.archive = flags&ARCHIVE != 0
	cv.rom = flags&ROM != 0
	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute handles "<cvar>" and "<cvar> <value>" lines. It reports false if
// the first argument is no variable.
func Execute(a cmd.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

// AddCommands registers set, toggle, reset and cvarlist.
func AddCommands(c *cmd.Commands) error {
	for n, f := range map[string]cmd.QFunc{
		"set":      set(c),
		"toggle":   toggle,
		"reset":    reset,
		"cvarlist": list,
	} {
		if err := c.Add(n, f); err != nil {
			return err
		}
	}
	return nil
}

func set(c *cmd.Commands) cmd.QFunc {
	return func(a cmd.Arguments) error {
		args := a.Args()[1:]
		if len(args) < 2 {
			conlog.Printf("set <cvar> <value>\n")
			return nil
		}
		name := args[0].String()
		if c.Exists(name) {
			return errors.Errorf("%s conflicts with a command", name)
		}
		if cv, ok := Get(name); ok {
			cv.SetByString(args[1].String())
			return nil
		}
		mutex.Lock()
		cv := create(name, args[1].String())
		cv.user = true
		mutex.Unlock()
		return nil
	}
}

func toggle(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("toggle <cvar> : toggle cvar\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return errors.Errorf("toggle: variable %v not found", args[0].String())
	}
	cv.Toggle()
	return nil
}

func reset(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("reset <cvar> : reset cvar to default\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return errors.Errorf("reset: variable %v not found", args[0].String())
	}
	cv.Reset()
	return nil
}

func list(_ cmd.Arguments) error {
	cvars := All()
	for _, v := range cvars {
		a := " "
		if v.Archive() {
			a = "*"
		}
		conlog.Printf("%s %s \"%s\"\n", a, v.Name(), v.String())
	}
	conlog.Printf("%v cvars\n", len(cvars))
	return nil
}
