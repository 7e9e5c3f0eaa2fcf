// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	developer bool
	flipV     bool

	// -parallel builds every object of a file at once
	parallel = boolInt{false, 0}

	basedir string
	game    string
	cache   string
	exec    string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// This allows "-flag", "-flag=4", "-flag=true" and "-flag=false"
	// but not "-flag 4"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func register(fs *flag.FlagSet) {
	fs.BoolVar(&developer, "developer", false, "print developer messages")
	fs.BoolVar(&flipV, "flipv", false, "store 1-v as texture coordinate")

	fs.Var(&parallel, "parallel", "build all objects in parallel, optional number of workers")

	fs.StringVar(&basedir, "basedir", ".", "directory holding the pak files")
	fs.StringVar(&game, "game", "", "game directory searched before basedir")
	fs.StringVar(&cache, "cache", "", "directory for the mesh cache, empty disables it")
	fs.StringVar(&exec, "exec", "", "file of commands to run")
}

func init() {
	register(flag.CommandLine)
}

func BaseDirectory() string {
	return basedir
}

func Game() string {
	return game
}

func Developer() bool {
	return developer
}

func FlipV() bool {
	return flipV
}

func CacheDirectory() string {
	return cache
}

func Exec() string {
	return exec
}

// Parallel reports whether -parallel was given and its worker count.
// A count of 0 means no limit was requested.
func Parallel() (bool, int) {
	return parallel.set, parallel.num
}
