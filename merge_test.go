package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeScalarCollision(t *testing.T) {
	bag := New().Set("a", 2)
	require.NoError(t, bag.Merge(map[string]interface{}{"a": 1}))
	assert.Equal(t, []interface{}{2, 1}, bag.Get("a"), "existing first, incoming appended")
}

func TestMergeMappings(t *testing.T) {
	bag := New().Set("a", map[string]interface{}{"y": 2})
	require.NoError(t, bag.Merge(map[string]interface{}{"a": map[string]interface{}{"x": 1}}))

	merged, ok := bag.Get("a").(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"x": 1, "y": 2}, merged)
}

func TestMergeNestedBags(t *testing.T) {
	bag := New().Set("a", New().Set("y", 2).Set("shared", "old"))
	other := New().Set("a", New().Set("x", 1).Set("shared", "new"))
	require.NoError(t, bag.Merge(other))

	nested, ok := bag.Get("a").(*Bag)
	require.True(t, ok, "bag-valued entries stay bags after a deep merge")
	assert.Equal(t, 2, nested.Get("y"))
	assert.Equal(t, 1, nested.Get("x"))
	assert.Equal(t, []interface{}{"old", "new"}, nested.Get("shared"))
}

func TestMergeListFlattening(t *testing.T) {
	testCases := []struct {
		name     string
		existing interface{}
		incoming interface{}
		expect   []interface{}
	}{
		{name: "scalar vs scalar", existing: 1, incoming: 2, expect: []interface{}{1, 2}},
		{name: "list vs scalar", existing: []interface{}{1, 2}, incoming: 3, expect: []interface{}{1, 2, 3}},
		{name: "scalar vs list", existing: 1, incoming: []interface{}{2, 3}, expect: []interface{}{1, 2, 3}},
		{name: "list vs list", existing: []interface{}{1}, incoming: []interface{}{2}, expect: []interface{}{1, 2}},
		{name: "nil vs scalar", existing: nil, incoming: 1, expect: []interface{}{nil, 1}},
	}

	for _, tc := range testCases {
		bag := New().Set("k", tc.existing)
		require.NoError(t, bag.Merge(map[string]interface{}{"k": tc.incoming}), tc.name)
		assert.Equal(t, tc.expect, bag.Get("k"), tc.name)
	}
}

func TestMergeNormalizesIncomingKeys(t *testing.T) {
	bag := New().Set("foo_bar", 1)
	require.NoError(t, bag.Merge(map[string]interface{}{"fooBar": 2}))
	assert.Equal(t, []interface{}{1, 2}, bag.Get("fooBar"))
	assert.Equal(t, 1, bag.Count())
}

func TestMergeOrder(t *testing.T) {
	bag := New().Set("b", 1).Set("a", 2)
	other := New().Set("c", 3).Set("a", 4)
	require.NoError(t, bag.Merge(other))
	assert.Equal(t, []string{"b", "a", "c"}, bag.Keys(), "existing keep position, new append")
}

func TestMergeRejectsInvalidSource(t *testing.T) {
	bag := New().Set("a", 1)
	for _, source := range []interface{}{42, "text", []interface{}{1}, nil} {
		err := bag.Merge(source)
		assert.ErrorIs(t, err, ErrInvalidMerge)
	}
	assert.Equal(t, 1, bag.Get("a"), "failed merge leaves state untouched")
}

func TestMergeReplacesState(t *testing.T) {
	bag := New().Set("a", 1)
	require.NoError(t, bag.Merge(map[string]interface{}{"b": 2}))
	assert.Equal(t, 1, bag.Get("a"))
	assert.Equal(t, 2, bag.Get("b"))
	assert.Equal(t, 2, bag.Count())
}
