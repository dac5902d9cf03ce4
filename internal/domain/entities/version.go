package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"
)

// ErrUnsupportedVersion is returned when a constraint cannot be reduced to a
// single semantic version.
var ErrUnsupportedVersion = errors.New("version cannot be coerced to semver")

// coercePattern matches the first MAJOR[.MINOR[.PATCH]] run in a loose string.
var coercePattern = regexp.MustCompile(`(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// NormalizeVersion reduces a declared constraint ("12.0.3", "^12.0.3",
// ">=13.1 <14") to one semantic version. A strict clean parse is tried
// first, then a coercive one.
func NormalizeVersion(raw string) (*semver.Version, error) {
	if cleaned, ok := cleanVersion(raw); ok {
		return semver.StrictNewVersion(cleaned)
	}

	coerced, ok := coerceVersion(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, raw)
	}
	return semver.StrictNewVersion(coerced)
}

// cleanVersion accepts only a full MAJOR.MINOR.PATCH version, optionally
// prefixed by "=" or "v" and surrounded by whitespace.
func cleanVersion(raw string) (string, bool) {
	cleaned := strings.TrimLeft(strings.TrimSpace(raw), "=v")
	if cleaned == "" || !modsemver.IsValid("v"+cleaned) {
		return "", false
	}

	// x/mod accepts the "v1" and "v1.2" shorthands, a clean version does not
	core, _, _ := strings.Cut(cleaned, "+")
	core, _, _ = strings.Cut(core, "-")
	if strings.Count(core, ".") != 2 { //nolint:mnd // major.minor.patch
		return "", false
	}
	return cleaned, true
}

func coerceVersion(raw string) (string, bool) {
	match := coercePattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}

	parts := []string{"0", "0", "0"}
	for i, component := range match[1:] {
		if component != "" {
			parts[i] = trimLeadingZeros(component)
		}
	}
	return strings.Join(parts, "."), true
}

func trimLeadingZeros(component string) string {
	trimmed := strings.TrimLeft(component, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
