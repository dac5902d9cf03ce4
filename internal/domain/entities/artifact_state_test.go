//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/codegen-tasks/internal/domain/entities"
)

func TestArtifactStateIsFresh(t *testing.T) {
	t.Parallel()

	t.Run("should be fresh only when every artifact is present", func(t *testing.T) {
		t.Parallel()

		for mask := 0; mask < 8; mask++ {
			// given
			state := entities.ArtifactState{
				ClientResolved:  mask&1 != 0,
				MarkerDirExists: mask&2 != 0,
				MarkerResolved:  mask&4 != 0,
			}

			// when
			fresh := state.IsFresh()

			// then
			assert.Equal(t, mask == 7, fresh, "%+v", state)
		}
	})
}
