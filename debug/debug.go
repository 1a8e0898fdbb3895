// Package debug exposes env-var controlled debug switches:
// XD_DEBUG_PRESER, XD_DEBUG_CONVERT, XD_DEBUG_PARSE.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	PreSerialize bool
	Convert      bool
	Parse        bool
}

var d *debug

func init() {
	d = &debug{}
	d.PreSerialize = boolEnv("XD_DEBUG_PRESER")
	d.Convert = boolEnv("XD_DEBUG_CONVERT")
	d.Parse = boolEnv("XD_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func PreSerialize() bool {
	return d.PreSerialize
}
func Convert() bool {
	return d.Convert
}
func Parse() bool {
	return d.Parse
}
