package loader

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/x"

	"github.com/viant/attrs/internal/conv"
)

// typeRegistry holds Go types registered for typed document views.
var typeRegistry = x.NewRegistry()

// Registry returns the registry of typed-view types.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers a Go type so documents can be decoded into it by
// name; use x.WithName to control the lookup name.
func RegisterType(t reflect.Type, options ...x.Option) {
	typeRegistry.Register(x.NewType(t, options...))
}

// Decode loads the mapping document at URL and converts it into a freshly
// allocated instance of the type registered under name, returning a pointer
// to it.
func Decode(ctx context.Context, URL, name string) (interface{}, error) {
	xType := typeRegistry.Lookup(name)
	if xType == nil {
		return nil, fmt.Errorf("decode attributes %q: unknown type %q", URL, name)
	}
	bag, err := Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	target := reflect.New(xType.Type).Interface()
	if err := conv.Convert(bag.Data(), target); err != nil {
		return nil, fmt.Errorf("decode attributes %q into %q: %w", URL, name, err)
	}
	return target, nil
}
