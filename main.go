// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"objmodel/cmd"
	"objmodel/commandline"
	"objmodel/conlog"
	"objmodel/cvar"
	"objmodel/filesystem"
)

import (
	// register the model loaders
	_ "objmodel/obj"
)

func configure() {
	if commandline.Developer() {
		cvarDeveloper.SetByString("1")
	}
	cvarDeveloper.SetCallback(func(cv *cvar.Cvar) {
		conlog.SetDeveloper(cv.Bool())
	})
	if commandline.FlipV() {
		cvarFlipV.SetByString("1")
	}
	if d := commandline.CacheDirectory(); d != "" {
		cvarCache.SetByString(d)
	}
	if ok, n := commandline.Parallel(); ok {
		cvarWorkers.SetValue(float32(n))
	} else {
		cvarWorkers.SetValue(1)
	}

	base := commandline.BaseDirectory()
	filesystem.UseBaseDir(base)
	if g := commandline.Game(); g != "" {
		filesystem.AddDir(filepath.Join(base, g))
	}
}

func execute() error {
	configure()
	defer filesystem.Reset()

	t, err := newTool(os.Stdout)
	if err != nil {
		return err
	}
	if e := commandline.Exec(); e != "" {
		b, err := filesystem.ReadFile(e)
		if err != nil {
			return errors.Wrapf(err, "couldn't exec %s", e)
		}
		if err := t.run(string(b)); err != nil {
			return err
		}
	}
	return t.execute(cmd.FromArgs(flag.Args()))
}

func main() {
	log.SetFlags(0)
	flag.Parse()
	if err := execute(); err != nil {
		log.Fatal(err)
	}
}
