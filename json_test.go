package attrs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	testCases := []struct {
		name   string
		bag    *Bag
		expect string
	}{
		{
			name:   "empty bag is an object, never a list",
			bag:    New(),
			expect: `{}`,
		},
		{
			name:   "insertion order preserved",
			bag:    New().Set("b", 1).Set("a", 2),
			expect: `{"b":1,"a":2}`,
		},
		{
			name:   "nested bag projects depth-first",
			bag:    New().Set("outer", New().Set("inner", "v")),
			expect: `{"outer":{"inner":"v"}}`,
		},
		{
			name:   "nil value kept",
			bag:    New().Set("x", nil),
			expect: `{"x":null}`,
		},
		{
			name:   "keys marshal normalized",
			bag:    New().Set("fooBar", true),
			expect: `{"foo_bar":true}`,
		},
	}

	for _, tc := range testCases {
		data, err := json.Marshal(tc.bag)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expect, string(data), tc.name)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var bag Bag
	err := json.Unmarshal([]byte(`{"zKey":1,"aNested":{"innerKey":"v"},"list":[1,{"x":2}]}`), &bag)
	require.NoError(t, err)

	assert.Equal(t, []string{"z_key", "a_nested", "list"}, bag.Keys(), "document order, normalized")
	assert.Equal(t, json.Number("1"), bag.Get("z_key"))

	nested, ok := bag.Get("a_nested").(*Bag)
	require.True(t, ok, "nested objects become nested bags")
	assert.Equal(t, "v", nested.Get("inner_key"))

	list, ok := bag.Get("list").([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)
	item, ok := list[1].(*Bag)
	require.True(t, ok, "objects inside lists become bags too")
	assert.Equal(t, json.Number("2"), item.Get("x"))
}

func TestUnmarshalJSONReplaces(t *testing.T) {
	bag := New().Set("stale", 1)
	require.NoError(t, bag.UnmarshalJSON([]byte(`{"fresh":true}`)))
	assert.False(t, bag.Has("stale"))
	assert.Equal(t, true, bag.Get("fresh"))
}

func TestUnmarshalJSONRejectsNonObjects(t *testing.T) {
	var bag Bag
	for _, input := range []string{`[]`, `"text"`, `1`, `{`} {
		assert.Error(t, bag.UnmarshalJSON([]byte(input)), input)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := `{"name":"alpha","spec":{"replicas":3,"labels":{"tier":"db"}},"tags":["a","b"]}`
	var bag Bag
	require.NoError(t, json.Unmarshal([]byte(original), &bag))
	data, err := json.Marshal(&bag)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "projection parses back as an equivalent mapping")
}

func TestString(t *testing.T) {
	assert.Equal(t, "{}", New().String())
	assert.Equal(t, "{}", (*Bag)(nil).String())
	assert.Equal(t, `{"a":1}`, New().Set("a", 1).String())
}
