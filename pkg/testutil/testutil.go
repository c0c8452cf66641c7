// Package testutil contains common test utilities.
package testutil

import (
	"os"
)

// Cleanuper wraps the Cleanup method. It is a subset of testing.TB,
// thus satisfied by *testing.T and *testing.B.
type Cleanuper interface {
	Cleanup(func())
}

// TempDir creates a temporary directory for testing that will be
// removed after the test finishes. It panics if the directory cannot be
// created.
//
// It is different from testing.TB.TempDir in that it resolves symlinks
// in the path of the directory.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "egg-test")
	if err != nil {
		panic(err)
	}
	dir, err = resolveSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// InTempDir is like TempDir, but also changes into the temporary
// directory, restoring the original working directory during cleanup.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working
// directory during cleanup.
func Chdir(c Cleanuper, dir string) {
	oldWd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.Chdir(oldWd) })
}

// Setenv sets the value of an environment variable for the duration of
// the test.
func Setenv(c Cleanuper, name, value string) {
	save(c, name)
	os.Setenv(name, value)
}

// Unsetenv unsets an environment variable for the duration of the test.
func Unsetenv(c Cleanuper, name string) {
	save(c, name)
	os.Unsetenv(name)
}

func save(c Cleanuper, name string) {
	value, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, value) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}
