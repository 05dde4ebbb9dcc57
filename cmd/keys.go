package cmd

import (
	"context"
	"fmt"
)

// KeysCmd prints the top-level normalized keys of the merged documents.
type KeysCmd struct{}

func (c *KeysCmd) Execute(args []string) error {
	bag, err := loadAll(context.Background(), args)
	if err != nil {
		return err
	}
	for _, key := range bag.Keys() {
		fmt.Println(key)
	}
	return nil
}
