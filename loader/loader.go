package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/attrs"
)

// Option customizes document loading.
type Option func(*options)

type options struct {
	bagOptions []attrs.Option
	recursive  bool
}

// WithBagOptions forwards construction options (factory, etc.) to every bag
// the loader builds.
func WithBagOptions(bagOptions ...attrs.Option) Option {
	return func(o *options) {
		o.bagOptions = append(o.bagOptions, bagOptions...)
	}
}

// WithRecursive controls whether nested mappings in the document become
// nested bags.  Loading is recursive by default.
func WithRecursive(recursive bool) Option {
	return func(o *options) {
		o.recursive = recursive
	}
}

func newOptions(opts []Option) *options {
	o := &options{recursive: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load downloads the mapping document at URL (any scheme viant/afs
// understands, plain paths included) and builds a bag from it.  Documents
// with a .json extension decode as JSON preserving document key order;
// everything else decodes as YAML.
func Load(ctx context.Context, URL string, opts ...Option) (*attrs.Bag, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download attributes %q: %w", URL, err)
	}
	bag, err := Parse(URL, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse attributes %q: %w", URL, err)
	}
	return bag, nil
}

// Parse builds a bag from raw document bytes; URL is only used to pick the
// decoder by extension.
func Parse(URL string, data []byte, opts ...Option) (*attrs.Bag, error) {
	o := newOptions(opts)
	bag := attrs.New(o.bagOptions...)

	if strings.ToLower(path.Ext(URL)) == ".json" {
		if o.recursive {
			// Bag-level decode keeps document key order.
			if err := bag.UnmarshalJSON(data); err != nil {
				return nil, err
			}
			return bag, nil
		}
		var raw map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return bag.AddAll(raw, false), nil
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return bag.AddAll(raw, o.recursive), nil
}
