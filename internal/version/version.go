// Package version provides build information for bookstall.
package version

import "fmt"

// Version is overridden at build time with -ldflags "-X .../version.Version=v1.2.3".
var Version = "development"

// Commit is overridden at build time with the short git hash.
var Commit = "unknown"

// String returns the version, suffixed with the commit hash when one was stamped.
func String() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}

// UserAgent is sent with every Catalog API request.
func UserAgent() string {
	return fmt.Sprintf("bookstall/%s", String())
}
