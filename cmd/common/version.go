package common

import (
	"fmt"
	"runtime"
)

const (
	// Application information
	ProjectName    = "WFO Parser"
	ProjectVersion = "1.1.0"
	ProjectRepo    = "github.com/quantfold/wfo-parser"

	// Build information - these would normally be set during build via -ldflags
	BuildDate   = "2024-01-01"
	BuildCommit = "dev"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	ProjectName  string `json:"project_name"`
	Version      string `json:"version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
	GoVersion    string `json:"go_version"`
	Architecture string `json:"architecture"`
	Repository   string `json:"repository"`
}

// GetVersionInfo returns complete version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		ProjectName:  ProjectName,
		Version:      ProjectVersion,
		BuildDate:    BuildDate,
		BuildCommit:  BuildCommit,
		GoVersion:    runtime.Version(),
		Architecture: runtime.GOOS + "/" + runtime.GOARCH,
		Repository:   ProjectRepo,
	}
}

// PrintVersion prints the version banner for a CLI tool
func PrintVersion(tool string) {
	info := GetVersionInfo()
	fmt.Printf("%s — %s %s (%s, %s)\n", tool, info.ProjectName, info.Version, info.GoVersion, info.Architecture)
}
