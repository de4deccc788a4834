//go:build unit

package patch_test

import (
	"testing"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	name := "Jan"

	assert.False(t, patch.Set(&name, nil))
	assert.Equal(t, "Jan", name)

	next := "Piet"
	assert.True(t, patch.Set(&name, &next))
	assert.Equal(t, "Piet", name)
}

func TestSetPtr(t *testing.T) {
	var notes *string
	assert.False(t, patch.SetPtr(&notes, nil))
	assert.Nil(t, notes)

	in := "achteringang"
	assert.True(t, patch.SetPtr(&notes, &in))
	in = "gewijzigd"
	assert.Equal(t, "achteringang", *notes)
}

func TestSetOrClear(t *testing.T) {
	old := "oud"
	notes := &old

	assert.False(t, patch.SetOrClear(&notes, nil))
	assert.Equal(t, "oud", *notes)

	next := "nieuw"
	assert.True(t, patch.SetOrClear(&notes, &next))
	assert.Equal(t, "nieuw", *notes)

	empty := ""
	assert.True(t, patch.SetOrClear(&notes, &empty))
	assert.Nil(t, notes)
}

func TestNonZero(t *testing.T) {
	assert.Nil(t, patch.NonZero[string](nil))

	empty := ""
	assert.Nil(t, patch.NonZero(&empty))

	in := "taart"
	out := patch.NonZero(&in)
	in = "gewijzigd"
	assert.Equal(t, "taart", *out)
}
