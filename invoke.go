package attrs

import "strings"

// Invoke routes a dynamically named accessor to one of the four primitives,
// using the remainder of the name as the key (normalized downstream):
//
//	Invoke("setFoo", 5)      ≡ Set("Foo", 5)
//	Invoke("getFoo")         ≡ Get("Foo")
//	Invoke("getFoo", "bar")  ≡ GetField("Foo", "bar")
//	Invoke("hasFoo")         ≡ Has("Foo")
//	Invoke("unsFoo")         ≡ Unset("Foo")
//	Invoke("unsetFoo")       ≡ Unset("Foo")
//
// The second return reports whether the name matched a known prefix;
// unrecognized names yield (nil, false) and leave the bag untouched.
func (b *Bag) Invoke(name string, args ...interface{}) (interface{}, bool) {
	switch {
	case len(name) > 5 && strings.HasPrefix(name, "unset"):
		b.Unset(name[5:])
		return nil, true
	case len(name) > 3 && strings.HasPrefix(name, "uns"):
		b.Unset(name[3:])
		return nil, true
	case len(name) > 3 && strings.HasPrefix(name, "set"):
		var value interface{}
		if len(args) > 0 {
			value = args[0]
		}
		return b.Set(name[3:], value), true
	case len(name) > 3 && strings.HasPrefix(name, "get"):
		if len(args) > 0 {
			if field, ok := args[0].(string); ok {
				return b.GetField(name[3:], field), true
			}
		}
		return b.Get(name[3:]), true
	case len(name) > 3 && strings.HasPrefix(name, "has"):
		return b.Has(name[3:]), true
	}
	return nil, false
}
