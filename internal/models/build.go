package models

import "strings"

// BuildInformation is set at build time using -ldflags.
type BuildInformation struct {
	Version string
	Commit  string
	Date    string
}

// VersionString returns the version, with the short commit hash
// appended for builds of the latest tag.
func (b BuildInformation) VersionString() string {
	const latest = "latest"
	if b.Version != latest {
		return b.Version
	}

	const shortHashLength = 7
	if len(b.Commit) < shortHashLength || !isHex(b.Commit) {
		return latest
	}
	return latest + "-" + b.Commit[:shortHashLength]
}

func isHex(s string) bool {
	return strings.Trim(s, "0123456789abcdef") == ""
}
