// Package version provides build version information embedding for
// tools built on execkit.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/execkit/version.Version=1.0.0"
//
// When no ldflags are provided, values fall back to the binary's embedded
// VCS build info.
package version
