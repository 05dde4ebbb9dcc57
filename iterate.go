package attrs

import "iter"

// Keys returns the normalized keys in insertion order.  The slice is a copy
// and safe for callers to modify.
func (b *Bag) Keys() []string {
	if b == nil || len(b.keys) == 0 {
		return nil
	}
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Entries returns a lazy, restartable sequence over the bag's entries.
// Traversal is shallow (nested bags are yielded as values, not walked into)
// and follows the insertion order captured when the iteration starts; values
// are read live at yield time.
func (b *Bag) Entries() iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		if b == nil {
			return
		}
		for _, key := range b.Keys() {
			value, ok := b.data[key]
			if !ok { // removed mid-iteration
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}
