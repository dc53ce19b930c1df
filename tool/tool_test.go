package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchBooks(query string) string { return query }

func TestNew(t *testing.T) {
	def, err := New(searchBooks,
		Name("search_books"),
		Description("Search the library catalog"),
		Parameters("query"),
	)
	require.NoError(t, err)
	assert.Equal(t, "search_books", def.Name)
	assert.Equal(t, "Search the library catalog", def.Description)
	assert.NotNil(t, def.Function)
}

func TestNew_NameInferred(t *testing.T) {
	def, err := New(searchBooks)
	require.NoError(t, err)
	assert.Equal(t, "searchBooks", def.Name)
}

func TestNew_NotAFunction(t *testing.T) {
	_, err := New("not a function")
	require.Error(t, err)

	_, err = New(nil)
	require.Error(t, err)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(searchBooks) })
	assert.Panics(t, func() { Must(42) })
}

func TestToNameAndSchema(t *testing.T) {
	def := Must(func(query string, limit int) string { return query },
		Name("search"),
		Parameters("query", "limit"),
	)

	name, schema := def.ToNameAndSchema()
	assert.Equal(t, "search", name)
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"query", "limit"}, schema.Required)

	_, ok := schema.Properties.Get("query")
	assert.True(t, ok)
	_, ok = schema.Properties.Get("limit")
	assert.True(t, ok)
}

func TestToNameAndSchema_DefaultParamNames(t *testing.T) {
	def := Must(func(s string) string { return s })

	_, schema := def.ToNameAndSchema()
	_, ok := schema.Properties.Get("param0")
	assert.True(t, ok)
}
