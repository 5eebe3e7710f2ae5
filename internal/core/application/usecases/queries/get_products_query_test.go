package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetProductsQuery("groceries", 25, 50)
	require.NoError(t, err)
	assert.Equal(t, "groceries", query.Category())
	assert.Equal(t, 25, query.Limit())
	assert.Equal(t, 50, query.Offset())
}

func TestNewGetProductsQuery_DefaultsApplied(t *testing.T) {
	query, err := queries.NewGetProductsQuery("", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, query.Category())
	assert.Equal(t, 50, query.Limit())
}

func TestNewGetProductsQuery_NegativeOffset(t *testing.T) {
	_, err := queries.NewGetProductsQuery("", 0, -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
