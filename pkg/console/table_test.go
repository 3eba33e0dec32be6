package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableStructs(t *testing.T) {
	type user struct {
		Name   string
		Admin  bool
		secret string
	}
	out, ok := renderTable([]user{{Name: "ada", Admin: true, secret: "x"}}, nil)
	require.True(t, ok)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Admin")
	assert.Contains(t, out, "ada")
	assert.NotContains(t, out, "secret")
}

func TestRenderTableColumnsFilter(t *testing.T) {
	out, ok := renderTable(map[string]map[string]int{
		"b": {"x": 1, "y": 2},
		"a": {"x": 3, "y": 4},
	}, []string{"y"})
	require.True(t, ok)
	assert.NotContains(t, out, " x ")
	assert.Less(t, strings.Index(out, " a "), strings.Index(out, " b "))
}

func TestRenderTableRejectsScalars(t *testing.T) {
	_, ok := renderTable(42, nil)
	assert.False(t, ok)
	_, ok = renderTable(nil, nil)
	assert.False(t, ok)
}
