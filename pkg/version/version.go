// Package version exposes the spendpad build version.
package version

// version is set at build time via -ldflags "-X github.com/spendpad/spendpad/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the version string embedded at build time,
// or "dev" for local builds.
func GetVersion() string {
	return version
}
