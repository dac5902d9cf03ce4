package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Transform rewrites the full content of a patch target. It does no I/O.
type Transform func(content string) string

// PatchRule pairs a version range with the transform that fixes it.
type PatchRule struct {
	Name      string
	Range     string
	Matches   func(version *semver.Version) bool
	Transform Transform
	// Marker is a substring only present once the transform has been applied.
	Marker string
}

// IsApplied reports whether content already carries this rule's patch.
func (it PatchRule) IsApplied(content string) bool {
	return it.Marker != "" && strings.Contains(content, it.Marker)
}

// PatchRules is evaluated in order; the first matching rule wins.
type PatchRules []PatchRule

// Select returns the first rule whose range contains version. Rules after
// the first match are not evaluated.
func (it PatchRules) Select(version *semver.Version) (PatchRule, bool) {
	if version == nil {
		return PatchRule{}, false
	}
	for _, rule := range it {
		if rule.Matches(version) {
			return rule, true
		}
	}
	return PatchRule{}, false
}

// NewConstraintRule builds a rule whose range is a semver constraint such as
// "13 - 13.0.6" or ">=13.3.1". It panics on an invalid constraint, rule
// tables are static.
func NewConstraintRule(name, constraint, marker string, transform Transform) PatchRule {
	parsed, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Sprintf("invalid constraint %q for rule %q: %v", constraint, name, err))
	}
	return PatchRule{
		Name:      name,
		Range:     constraint,
		Matches:   parsed.Check,
		Transform: transform,
		Marker:    marker,
	}
}

// NewMajorRule builds a rule matching every version, pre-releases included,
// whose major component equals major.
func NewMajorRule(name string, major uint64, marker string, transform Transform) PatchRule {
	return PatchRule{
		Name:  name,
		Range: fmt.Sprintf("%d.x", major),
		Matches: func(version *semver.Version) bool {
			return version.Major() == major
		},
		Transform: transform,
		Marker:    marker,
	}
}
