// SPDX-License-Identifier: GPL-2.0-or-later

package obj

import (
	"strings"
)

type LinePartition struct {
	Command    string
	Parameters string
}

// PartitionLine splits s at the first space into command and parameters.
// A line without a space is a command without parameters.
func PartitionLine(s string) LinePartition {
	cmd, params, _ := strings.Cut(s, " ")
	return LinePartition{Command: cmd, Parameters: params}
}

// StripComments drops everything from the first '#' on.
func StripComments(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// StripWhitespace trims leading and trailing spaces. Only ' ' counts,
// tabs are kept.
func StripWhitespace(s string) string {
	return strings.Trim(s, " ")
}

// Split cuts s at every delimiter. A trailing empty element is dropped, so
// Split("a b ", ' ') is ["a" "b"] and Split("", ' ') is empty.
func Split(s string, delimiter byte) []string {
	if s == "" {
		return nil
	}
	r := strings.Split(s, string(delimiter))
	if r[len(r)-1] == "" {
		r = r[:len(r)-1]
	}
	return r
}
