package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Apply   bool
	Resolve bool
	Merge   bool
	Tokens  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("STYLEMARK_DEBUG_APPLY")
	d.Resolve = boolEnv("STYLEMARK_DEBUG_RESOLVE")
	d.Merge = boolEnv("STYLEMARK_DEBUG_MERGE")
	d.Tokens = boolEnv("STYLEMARK_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}
func Resolve() bool {
	return d.Resolve
}
func Merge() bool {
	return d.Merge
}
func Tokens() bool {
	return d.Tokens
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
