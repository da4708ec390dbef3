package queries_test

import (
	"testing"

	"dinein/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllOrdersQuery_Validate_WhenConstructedProperly_ShouldReturnNoError(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var query queries.GetAllOrdersQuery // zero-value query
	err := query.Validate()
	require.Error(t, err)
	assert.Equal(t, queries.ErrGetAllOrdersQueryIsNotConstructed, err)
}
