// Package buildinfo provides build information for snapstore binaries.
//
// Version, Commit, and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X .../internal/infra/buildinfo.Version=v1.0.0"
//
// @design DS-0501
package buildinfo
