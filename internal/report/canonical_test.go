package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_SortsKeys(t *testing.T) {
	b, err := MarshalCanonical(map[string]any{
		"zebra": 1,
		"alpha": 2,
		"mid":   3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"mid":3,"zebra":1}`, string(b))
}

func TestMarshalCanonical_NestedStructures(t *testing.T) {
	b, err := MarshalCanonical(map[string]any{
		"list": []any{"a", 1, true},
		"obj":  map[string]any{"y": false, "x": "v"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"list":["a",1,true],"obj":{"x":"v","y":false}}`, string(b))
}

func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	b, err := MarshalCanonical("<a> & </a>")
	require.NoError(t, err)
	assert.Equal(t, `"<a> & </a>"`, string(b))
}

func TestMarshalCanonical_RejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	assert.Error(t, err)

	_, err = MarshalCanonical(map[string]any{"k": nil})
	assert.Error(t, err)
}

func TestMarshalCanonical_RejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"k": 1.5})
	assert.Error(t, err)
}

func TestMarshalCanonical_Deterministic(t *testing.T) {
	m := map[string]any{"b": []any{"x"}, "a": 1, "c": map[string]any{"k": "v"}}

	b1, err := MarshalCanonical(m)
	require.NoError(t, err)
	b2, err := MarshalCanonical(m)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
}
