//go:build !mobile

// Package mobile is the ebitenmobile binding entry point; the real code
// compiles only with -tags mobile.
package mobile

// Dummy is an exported no-op so the package can be referenced from
// ordinary builds.
func Dummy() {}
