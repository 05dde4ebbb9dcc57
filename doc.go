// Package attrs provides Bag, an ordered key/value container for arbitrarily
// named attributes.  Keys pass through a single normalization gate (camel-case
// boundaries become underscores, everything is lowercased) so that a value
// stored under "fooBar" is retrievable as "foo_bar" or "FooBar".  Bags compose
// recursively (nested raw mappings can be loaded as nested bags), merge with a
// merge-recursive policy and project to JSON as a plain object.  The type is
// meant to be embedded by higher-level domain objects that need flexible
// "bag of named properties" semantics.
//
// Bags are not safe for concurrent use; callers sharing a bag across
// goroutines must synchronize externally.
package attrs
