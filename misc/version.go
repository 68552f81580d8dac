// Package misc keeps build time stamps shared by all binaries.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// set by linker: -X objkit/misc.version=... -X objkit/misc.githash=...
var (
	version = "dev"
	githash = "unknown"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return githash
}

// GetAppName returns name of the running executable without extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	if name == "" || name == "." {
		return "objkit"
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
