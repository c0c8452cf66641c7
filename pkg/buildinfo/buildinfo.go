// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/emekler0729/egg/pkg/buildinfo.Version=..." to
// "go build".
package buildinfo

// Version identifies the version of Egg.
var Version = "0.1.0"

// Reproducible identifies whether the build is reproducible. This can be
// "true" or "false".
var Reproducible = "false"
