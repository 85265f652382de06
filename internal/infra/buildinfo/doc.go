// Package buildinfo provides build information for twokey.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/twokey-go/internal/infra/buildinfo.Version=v1.0.0"
//
// Commit and build time fall back to the VCS stamp recorded by the Go
// toolchain, and GoVersion to the running runtime version.
package buildinfo
