package attrs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viant/attrs/internal/conv"
)

// ErrInvalidMerge signals a merge source that is neither a bag nor a raw
// string-keyed mapping.
var ErrInvalidMerge = errors.New("merge source must be a bag or a raw mapping")

// Merge combines the bag's content with another bag or raw mapping using the
// merge-recursive policy and destructively replaces the bag's mapping with
// the result:
//
//   - keys present on one side only are kept;
//   - keys present on both sides with mapping values on both sides are
//     merged recursively;
//   - any other collision promotes the values into an ordered list, existing
//     value(s) first, incoming value(s) appended (lists on either side are
//     flattened into the result, never nested).
//
// Existing entries keep their position; new keys are appended in the
// incoming order (sorted key order for raw Go maps).  Merge is the only Bag
// operation that reports an error: anything other than *Bag or a raw mapping
// is rejected with ErrInvalidMerge.
func (b *Bag) Merge(other interface{}) error {
	var incoming map[string]interface{}
	var order []string

	switch actual := other.(type) {
	case *Bag:
		if actual == nil {
			return nil
		}
		incoming = actual.data
		order = actual.keys
	default:
		mapping, ok := conv.AsMapping(other)
		if !ok {
			return fmt.Errorf("cannot merge %T: %w", other, ErrInvalidMerge)
		}
		incoming = mapping
		order = sortedKeys(mapping)
	}

	merged := b.Clone()
	for _, key := range order {
		normalized := Normalize(key)
		value := incoming[key]
		if existing, ok := merged.data[normalized]; ok {
			value = mergeValue(existing, value)
		}
		merged.put(normalized, value)
	}
	b.keys, b.data = merged.keys, merged.data
	return nil
}

// mergeValue resolves a single key collision per the merge-recursive policy.
func mergeValue(existing, incoming interface{}) interface{} {
	if bag, ok := existing.(*Bag); ok {
		if _, mergeable := conv.AsMapping(incoming); mergeable {
			merged := bag.Clone()
			_ = merged.Merge(incoming)
			return merged
		}
		return collide(existing, incoming)
	}
	if left, ok := conv.AsMapping(existing); ok {
		if right, ok := conv.AsMapping(incoming); ok {
			return mergeMappings(left, right)
		}
	}
	return collide(existing, incoming)
}

// mergeMappings deep-merges two raw mappings into a fresh map.  Raw nested
// keys are kept verbatim; normalization applies only at bag level.
func mergeMappings(left, right map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(left)+len(right))
	for key, value := range left {
		merged[key] = value
	}
	for _, key := range sortedKeys(right) {
		value := right[key]
		if existing, ok := merged[key]; ok {
			value = mergeValue(existing, value)
		}
		merged[key] = value
	}
	return merged
}

// collide promotes colliding non-mergeable values into an ordered list.
func collide(existing, incoming interface{}) []interface{} {
	var list []interface{}
	if items, ok := existing.([]interface{}); ok {
		list = append(list, items...)
	} else {
		list = append(list, existing)
	}
	if items, ok := incoming.([]interface{}); ok {
		return append(list, items...)
	}
	return append(list, incoming)
}

func sortedKeys(mapping map[string]interface{}) []string {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
