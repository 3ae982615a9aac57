// Package version exposes the build version of adminboard.
package version

// version is overridden at link time with -ldflags "-X github.com/rshade/adminboard/pkg/version.version=...".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
