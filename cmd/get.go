package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetCmd looks up a single attribute across the supplied documents.
type GetCmd struct {
	Key   string `short:"k" long:"key" description:"Attribute key (any spelling that normalizes to it)" required:"yes"`
	Field string `short:"p" long:"field" description:"Field of the stored value, when it is itself a mapping"`
}

func (c *GetCmd) Execute(args []string) error {
	bag, err := loadAll(context.Background(), args)
	if err != nil {
		return err
	}
	var value interface{}
	if c.Field != "" {
		value = bag.GetField(c.Key, c.Field)
	} else {
		value = bag.Get(c.Key)
	}
	if value == nil && !bag.Has(c.Key) {
		return fmt.Errorf("no such attribute %q", c.Key)
	}
	switch actual := value.(type) {
	case string:
		fmt.Println(actual)
	case []byte:
		fmt.Println(string(actual))
	default:
		data, _ := json.MarshalIndent(actual, "", "  ")
		fmt.Println(string(data))
	}
	return nil
}
