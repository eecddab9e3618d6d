package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("cars").
		Set("doc", "{}").
		Where(squirrel.Eq{"id": "abc"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE cars SET doc = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"{}", "abc"}, args)
}

func TestBuilder_Delete(t *testing.T) {
	query, args, err := Delete("cars").Where(squirrel.Eq{"id": "abc"}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM cars WHERE id = $1", query)
	assert.Equal(t, []interface{}{"abc"}, args)
}
