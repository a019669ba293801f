// Package version reports the build metadata compiled into the binary.
package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at build time through ldflags
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the release tag, branch or vcs revision this binary
// was built from, or "dev" when unknown.
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if hash := vcs()["hash"]; len(hash) >= 12 {
		return hash[:12]
	}
	return "dev"
}

// Map returns the build metadata for the named executable.
func Map(execName string) map[string]string {
	metadata := vcs()
	metadata["name"] = execName
	metadata["version"] = Version()
	metadata["compiler"] = runtime.Version()
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}
	return metadata
}

// JSON returns the build metadata for the named executable as
// indented JSON.
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(Map(execName), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// vcs returns the source path and version control settings embedded by
// the toolchain, keyed the way Map reports them.
func vcs() map[string]string {
	metadata := make(map[string]string, 5)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return metadata
	}
	if info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}

	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	if value := settings["vcs.revision"]; value != "" {
		metadata["hash"] = value
	}
	if value := settings["vcs.time"]; value != "" {
		metadata["build_time"] = value
	}
	if settings["vcs.modified"] == "true" {
		metadata["modified"] = "true"
	}
	if goos, goarch := settings["GOOS"], settings["GOARCH"]; goos != "" && goarch != "" {
		metadata["platform"] = goos + "/" + goarch
	}

	return metadata
}
