package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Mapper is implemented by container types that can expose their current
// state as a raw string-keyed mapping.
type Mapper interface {
	Data() map[string]interface{}
}

// AsMapping reports whether in is usable as a raw string-keyed mapping and
// returns it as map[string]interface{}.
//
// Fast-paths: map[string]interface{} is returned as-is (aliased, not copied)
// and Mapper implementations contribute their live data.  Other string-keyed
// map kinds are converted through a shallow reflective copy.  Anything else,
// including nil, yields (nil, false).
func AsMapping(in interface{}) (map[string]interface{}, bool) {
	switch actual := in.(type) {
	case nil:
		return nil, false
	case map[string]interface{}:
		return actual, true
	case Mapper:
		return actual.Data(), true
	case map[string]string:
		out := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			out[k] = v
		}
		return out, true
	}
	v := reflect.ValueOf(in)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]interface{}, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// Convert performs a best-effort conversion of the input value into the type
// pointed to by outPtr.
//
// Fast-path: when input is already assignable to the destination element type
// it is copied directly. Otherwise Convert falls back to a JSON marshal/
// unmarshal round-trip which handles the majority of simple struct/map cases
// without requiring reflection heavy field walking at the call-site.
//
// A nil input leaves outPtr's value untouched (zero value).
func Convert(in, outPtr interface{}) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}

	if in == nil {
		return nil // leave zero value
	}

	// Fast-path when types match or are assignable.
	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}

	// Fallback: JSON round-trip.
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}
