// Package version exposes the build version, overridable at link time.
package version

// version is set via -ldflags "-X github.com/hvackit/loadcalc/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set at build time

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
