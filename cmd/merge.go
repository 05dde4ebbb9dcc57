package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// MergeCmd folds the supplied documents into one bag with the
// merge-recursive policy and prints the result, or uploads it when a
// destination URL is given.
type MergeCmd struct {
	Dest string `short:"o" long:"dest" description:"Destination URL for the merged JSON projection (stdout when empty)"`
}

func (c *MergeCmd) Execute(args []string) error {
	ctx := context.Background()
	bag, err := loadAll(ctx, args)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(bag, "", "  ")
	if err != nil {
		return err
	}
	if c.Dest == "" {
		fmt.Println(string(data))
		return nil
	}
	fs := afs.New()
	if err := fs.Upload(ctx, c.Dest, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("upload merged attributes %q: %w", c.Dest, err)
	}
	return nil
}
