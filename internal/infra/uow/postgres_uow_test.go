//go:build unit

package uow

import (
	"testing"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgTx_RepositoriesAreBuiltOnce(t *testing.T) {
	tx := newPgTx(query.New(), nil)

	bookings := tx.Bookings()
	require.NotNil(t, bookings)
	assert.Same(t, bookings, tx.Bookings())

	options := tx.Options()
	require.NotNil(t, options)
	assert.Same(t, options, tx.Options())
}
