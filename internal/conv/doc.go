// Package conv provides small, reflection-based helpers to coerce arbitrary
// Go values.  AsMapping recognizes anything usable as a raw string-keyed
// mapping (plain maps, Mapper implementations such as *attrs.Bag) and is the
// gate through which recursive loads and merges detect nested mappings.
// Convert performs a best-effort JSON marshal/unmarshal round-trip, which is
// sufficient for decoding raw mappings into registered typed views.
package conv
