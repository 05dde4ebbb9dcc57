package attrs

import (
	"sort"

	"github.com/viant/attrs/internal/conv"
)

// Bag is an ordered container of named attributes.  Every key is normalized
// (see Normalize) before it touches the underlying mapping, so callers may
// address the same entry with any raw spelling that normalizes identically.
// Entries preserve insertion order; re-setting an existing key keeps its
// original position (last write wins for the value).
//
// The zero value is an empty bag ready for use.
type Bag struct {
	keys    []string
	data    map[string]interface{}
	factory Factory
	// recursive controls whether the construction-time load wraps nested
	// raw mappings into nested bags.
	recursive bool
}

// New returns an empty bag with the supplied options applied.
func New(options ...Option) *Bag {
	b := &Bag{}
	for _, option := range options {
		option(b)
	}
	return b
}

// NewBag returns a bag initialized from a raw mapping.  The options act as
// the post-construction extension seam for embedders; data loading itself is
// additive (AddAll) and honors WithRecursive.
func NewBag(raw map[string]interface{}, options ...Option) *Bag {
	b := New(options...)
	b.AddAll(raw, b.recursive)
	return b
}

// From builds a bag from an arbitrary payload.  Anything coercible to a raw
// string-keyed mapping (plain maps, another *Bag) seeds the data; any other
// payload is ignored for data-loading purposes while the options still apply.
func From(payload interface{}, options ...Option) *Bag {
	b := New(options...)
	if raw, ok := conv.AsMapping(payload); ok {
		b.AddAll(raw, b.recursive)
	}
	return b
}

// Set stores value under the normalized key, overwriting any previous entry,
// and returns the bag to enable chaining.
func (b *Bag) Set(key string, value interface{}) *Bag {
	b.put(Normalize(key), value)
	return b
}

// SetAll destructively replaces the bag's content with the supplied raw
// mapping.  A nil or empty mapping just clears the bag; anything else clears
// first and then bulk-loads (non-recursively).
func (b *Bag) SetAll(raw map[string]interface{}) *Bag {
	b.Clear()
	if len(raw) > 0 {
		b.AddAll(raw, false)
	}
	return b
}

// AddAll bulk-loads entries from a raw mapping into the existing content
// (additive, not destructive).  When recursive is true, every value that is
// itself a raw mapping is first wrapped into a nested bag built through the
// construction seam, with the flag propagated, so deeply nested raw
// structures become a tree of bags.  Go maps carry no insertion order, so
// entries are loaded in sorted key order for deterministic placement.
func (b *Bag) AddAll(raw map[string]interface{}, recursive bool) *Bag {
	if len(raw) == 0 {
		return b
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := raw[key]
		if recursive {
			if _, isBag := value.(*Bag); !isBag {
				if nested, ok := conv.AsMapping(value); ok {
					child := b.newNested()
					child.AddAll(nested, true)
					value = child
				}
			}
		}
		b.put(Normalize(key), value)
	}
	return b
}

// Get returns the value stored under the normalized key, or nil when the key
// is absent.  Absence is never an error.
func (b *Bag) Get(key string) interface{} {
	if b == nil || b.data == nil {
		return nil
	}
	return b.data[Normalize(key)]
}

// GetField returns the named field of the value stored under key, provided
// that value is itself subscriptable (a nested bag or a string-keyed map);
// otherwise it returns nil.  Nested-bag lookups normalize the field through
// the bag's own gate; raw map lookups use the field verbatim.
func (b *Bag) GetField(key, field string) interface{} {
	value := b.Get(key)
	switch actual := value.(type) {
	case nil:
		return nil
	case *Bag:
		return actual.Get(field)
	case map[string]interface{}:
		return actual[field]
	default:
		if mapping, ok := conv.AsMapping(actual); ok {
			return mapping[field]
		}
	}
	return nil
}

// Data returns the live internal mapping keyed by normalized keys.  The
// result aliases the bag's state: mutations through the returned map are
// visible to the bag and vice versa.  Entry order is not represented; keys
// added through the alias join ordered traversal (Entries, MarshalJSON) only
// once re-set through the bag.  It returns nil for an empty bag.
func (b *Bag) Data() map[string]interface{} {
	if b == nil {
		return nil
	}
	return b.data
}

// Has reports whether the normalized key is present.  Presence is a property
// of the key, not of the value: an entry explicitly set to nil still exists.
func (b *Bag) Has(key string) bool {
	if b == nil || b.data == nil {
		return false
	}
	_, ok := b.data[Normalize(key)]
	return ok
}

// HasAny reports whether the bag holds at least one entry.
func (b *Bag) HasAny() bool {
	return b != nil && len(b.data) > 0
}

// Unset removes the entry stored under the normalized key.  Removing a
// missing key is a silent no-op.
func (b *Bag) Unset(key string) *Bag {
	if b == nil || b.data == nil {
		return b
	}
	normalized := Normalize(key)
	if _, ok := b.data[normalized]; !ok {
		return b
	}
	delete(b.data, normalized)
	for i, candidate := range b.keys {
		if candidate == normalized {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
	return b
}

// Clear removes every entry.
func (b *Bag) Clear() *Bag {
	b.keys = nil
	b.data = nil
	return b
}

// Count returns the number of top-level entries; values are not recursed
// into, matching iteration.
func (b *Bag) Count() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Clone returns a bag holding a shallow copy of the data pairs.  Only the
// data participates in copies; transient configuration such as the
// construction seam is deliberately not carried over.
func (b *Bag) Clone() *Bag {
	clone := &Bag{}
	if b == nil || len(b.data) == 0 {
		return clone
	}
	clone.keys = make([]string, len(b.keys))
	copy(clone.keys, b.keys)
	clone.data = make(map[string]interface{}, len(b.data))
	for key, value := range b.data {
		clone.data[key] = value
	}
	return clone
}

// put stores an already-normalized key, preserving insertion order.
func (b *Bag) put(normalized string, value interface{}) {
	if b.data == nil {
		b.data = make(map[string]interface{})
	}
	if _, ok := b.data[normalized]; !ok {
		b.keys = append(b.keys, normalized)
	}
	b.data[normalized] = value
}

// newNested builds a nested bag through the construction seam so embedders
// supplying a Factory get correctly-typed nested instances.
func (b *Bag) newNested() *Bag {
	if b.factory != nil {
		return b.factory()
	}
	return &Bag{}
}
