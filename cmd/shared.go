package cmd

import (
	"context"
	"fmt"

	"github.com/viant/attrs"
	"github.com/viant/attrs/loader"
)

// loadAll loads every document URL in order and folds it into one bag using
// the merge-recursive policy, so later documents combine with (rather than
// overwrite) earlier ones.
func loadAll(ctx context.Context, URLs []string) (*attrs.Bag, error) {
	if len(URLs) == 0 {
		return nil, fmt.Errorf("no input documents supplied")
	}
	result := attrs.New()
	for _, URL := range URLs {
		bag, err := loader.Load(ctx, URL)
		if err != nil {
			return nil, err
		}
		if err := result.Merge(bag); err != nil {
			return nil, err
		}
	}
	return result, nil
}
