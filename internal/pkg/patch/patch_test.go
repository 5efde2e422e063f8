//go:build unit

package patch_test

import (
	"testing"

	"grooming-salon/internal/pkg/patch"
	"grooming-salon/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "kept", patch.Coalesce[string](nil, "kept"))
	assert.Equal(t, "new", patch.Coalesce(ptr.Of("new"), "kept"))
}

func TestOptional(t *testing.T) {
	current := ptr.Of(3.2)
	assert.Same(t, current, patch.Optional(nil, current))

	got := patch.Optional(ptr.Of(4.0), current)
	assert.Equal(t, 4.0, *got)
	assert.Equal(t, 3.2, *current)
}
