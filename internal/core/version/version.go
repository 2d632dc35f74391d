// Package version normalizes the build version reported by --version.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Canonical parses raw as a semantic version, with or without a leading
// "v", and returns it as MAJOR.MINOR.PATCH with any prerelease and build
// metadata kept.
func Canonical(raw string) (string, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if err != nil {
		return "", fmt.Errorf("parsing version '%s': %w. Ensure version is like vX.Y.Z or X.Y.Z", raw, err)
	}
	return v.String(), nil
}
