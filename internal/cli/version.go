// Package cli provides Cobra command definitions for fill.
package cli

import (
	"fmt"
	"runtime"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go_version"`
}

// NewVersionInfo fills in the Go version for build-time values.
func NewVersionInfo(version, commit, date string) VersionInfo {
	return VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String formats the version line shown by --version.
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", v.Version, v.Commit, v.Date, v.Go)
}
