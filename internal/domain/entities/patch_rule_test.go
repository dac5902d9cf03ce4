//go:build unit

package entities_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

func TestPatchRulesSelect(t *testing.T) {
	t.Parallel()

	t.Run("should select exactly the rule covering each version", func(t *testing.T) {
		t.Parallel()

		// given
		rules := entities.NewSuspensePatchRules()
		cases := map[string]string{
			"12.0.0":          "next-12-hydrate-root",
			"12.3.4":          "next-12-hydrate-root",
			"12.2.0-canary.3": "next-12-hydrate-root",
			"13.0.0":          "next-13.0-hydrate-root",
			"13.0.6":          "next-13.0-hydrate-root",
			"13.1.0":          "next-13.1-on-recoverable-error",
			"13.2.4":          "next-13.1-on-recoverable-error",
			"13.3.0":          "next-13.1-on-recoverable-error",
			"13.3.1":          "next-13.3-on-recoverable-error",
			"13.5.6":          "next-13.3-on-recoverable-error",
			"14.2.3":          "next-13.3-on-recoverable-error",
		}

		for raw, expected := range cases {
			// when
			rule, ok := rules.Select(semver.MustParse(raw))

			// then
			require.True(t, ok, raw)
			assert.Equal(t, expected, rule.Name, raw)

			matching := 0
			for _, candidate := range rules {
				if candidate.Matches(semver.MustParse(raw)) {
					matching++
				}
			}
			assert.Equal(t, 1, matching, "ranges must not overlap for %s", raw)
		}
	})

	t.Run("should select nothing outside every range", func(t *testing.T) {
		t.Parallel()

		// given
		rules := entities.NewSuspensePatchRules()

		for _, raw := range []string{"11.1.4", "13.0.7", "13.0.12", "10.0.0", "13.3.1-canary.2"} {
			// when
			_, ok := rules.Select(semver.MustParse(raw))

			// then
			assert.False(t, ok, raw)
		}
	})

	t.Run("should select nothing for a nil version", func(t *testing.T) {
		t.Parallel()

		// given
		rules := entities.NewSuspensePatchRules()

		// when
		_, ok := rules.Select(nil)

		// then
		assert.False(t, ok)
	})

	t.Run("should stop at the first matching rule", func(t *testing.T) {
		t.Parallel()

		// given
		evaluated := []string{}
		track := func(name string, matches bool) entities.PatchRule {
			return entities.PatchRule{
				Name: name,
				Matches: func(*semver.Version) bool {
					evaluated = append(evaluated, name)
					return matches
				},
			}
		}
		rules := entities.PatchRules{track("a", false), track("b", true), track("c", true)}

		// when
		rule, ok := rules.Select(semver.MustParse("1.0.0"))

		// then
		require.True(t, ok)
		assert.Equal(t, "b", rule.Name)
		assert.Equal(t, []string{"a", "b"}, evaluated)
	})
}

func TestNewConstraintRule(t *testing.T) {
	t.Parallel()

	t.Run("should panic on an invalid constraint", func(t *testing.T) {
		t.Parallel()

		// given
		build := func() {
			entities.NewConstraintRule("broken", "not a range", "", nil)
		}

		// when / then
		assert.Panics(t, build)
	})
}

func TestPatchRuleIsApplied(t *testing.T) {
	t.Parallel()

	t.Run("should detect the marker", func(t *testing.T) {
		t.Parallel()

		// given
		rule := entities.PatchRule{Marker: "PATCHED"}

		// when / then
		assert.True(t, rule.IsApplied("x PATCHED y"))
		assert.False(t, rule.IsApplied("x y"))
	})

	t.Run("should never report applied without a marker", func(t *testing.T) {
		t.Parallel()

		// given
		rule := entities.PatchRule{}

		// when / then
		assert.False(t, rule.IsApplied("anything"))
	})
}
