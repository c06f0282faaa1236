// Package debug gates trace output on JP_DEBUG_* environment variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pointer bool
	Patch   bool
	Patches bool
	Store   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pointer = boolEnv("JP_DEBUG_POINTER")
	d.Patch = boolEnv("JP_DEBUG_PATCH")
	d.Patches = boolEnv("JP_DEBUG_PATCHES")
	d.Store = boolEnv("JP_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Pointer() bool {
	return d.Pointer
}
func Patch() bool {
	return d.Patch
}
func Patches() bool {
	return d.Patches
}
func Store() bool {
	return d.Store
}
