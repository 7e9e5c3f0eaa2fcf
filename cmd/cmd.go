// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownCommand = errors.New("unknown command")

type QFunc func(args Arguments) error

type Commands map[string]QFunc

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f QFunc) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by the first argument. It reports false
// if there is no such command.
func (c *Commands) Execute(a Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(a); err != nil {
			return true, errors.Wrap(err, name)
		}
		return true, nil
	}
	return false, nil
}

// ExecuteText runs every command line of text and stops at the first
// failure. Empty lines are skipped.
func (c *Commands) ExecuteText(text string) error {
	for _, l := range SplitLines(text) {
		a := Parse(l)
		if len(a.Args()) == 0 {
			continue
		}
		ok, err := c.Execute(a)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(ErrUnknownCommand, a.Argv(0).String())
		}
	}
	return nil
}

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}
