package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrIncompatible is returned when a catalog's requires constraint rejects
// the running generator version.
var ErrIncompatible = errors.New("catalog is not compatible with this generator version")

// CheckCompatibility verifies the manifest's own version parses and that the
// generator version satisfies the requires constraint. Development builds
// ("dev" or empty) skip the constraint check.
func CheckCompatibility(m *Manifest, generatorVersion string) error {
	if _, err := parseSemver(m.Version); err != nil {
		return fmt.Errorf("catalog %s: invalid version %q: %w", m.Name, m.Version, err)
	}
	if m.Requires == "" || isDevVersion(generatorVersion) {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("catalog %s: invalid requires constraint %q: %w", m.Name, m.Requires, err)
	}
	v, err := parseSemver(generatorVersion)
	if err != nil {
		return fmt.Errorf("parsing generator version %q: %w", generatorVersion, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: catalog %s requires %s, running %s", ErrIncompatible, m.Name, m.Requires, generatorVersion)
	}
	return nil
}

func isDevVersion(version string) bool {
	return version == "" || version == "dev"
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
