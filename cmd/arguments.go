// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"
)

type QArg struct {
	a string
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Bool() bool {
	switch a.a {
	case "1", "t", "T", "true", "TRUE", "True", "On", "ON", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed input line
	full string
}

// Argv returns the i-th argument or an empty one.
func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		return QArg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

// ArgumentString returns everything after the command name.
func (c *Arguments) ArgumentString() string {
	// args[0] is the cmd
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	return strings.Trim(r, "\"\t ")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// Parse splits s into arguments at spaces and tabs. Double quotes group
// words, "//" starts a comment.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimSpace(s)
	args.args = []QArg{}
	in := args.full
	for i := 0; i < len(in); {
		switch {
		case isSpace(in[i]):
			i++
		case in[i] == '"':
			end := strings.IndexByte(in[i+1:], '"')
			if end < 0 {
				// unterminated, take the rest
				args.args = append(args.args, QArg{in[i+1:]})
				return
			}
			args.args = append(args.args, QArg{in[i+1 : i+1+end]})
			i += end + 2
		case strings.HasPrefix(in[i:], "//"):
			return
		default:
			j := i
			for j < len(in) && !isSpace(in[j]) && in[j] != '"' {
				j++
			}
			args.args = append(args.args, QArg{in[i:j]})
			i = j
		}
	}
	return
}

// FromArgs builds Arguments from already split words, e.g. os.Args.
func FromArgs(words []string) Arguments {
	a := Arguments{args: make([]QArg, 0, len(words))}
	for _, w := range words {
		a.args = append(a.args, QArg{w})
	}
	a.full = strings.Join(words, " ")
	return a
}

// SplitLines cuts text into command lines at newlines and at ';' outside
// of quotes.
func SplitLines(text string) []string {
	var r []string
	quote := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			quote = !quote
		case ';':
			if quote {
				continue
			}
			fallthrough
		case '\n':
			r = append(r, text[start:i])
			start = i + 1
			quote = false
		}
	}
	if start < len(text) {
		r = append(r, text[start:])
	}
	return r
}
