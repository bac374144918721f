package uasset

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of the uasset library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build of the library or a binary linking it.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// String formats the build info on one line, e.g.
// "uasset 0.1.0 (commit abc123, built 2026-01-02T03:04:05Z, go1.26.0)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("uasset %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns build information.
//
// GitCommit and BuildTime are stamped with -ldflags and read "unknown"
// otherwise. GoVersion falls back to the running toolchain:
//
//	go build -ldflags="-X github.com/simonhull/uasset.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/uasset.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/uasset-dump
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == unknown {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

const unknown = "unknown"

// Set via -ldflags.
var (
	gitCommit = unknown
	buildTime = unknown
	goVersion = unknown
)
