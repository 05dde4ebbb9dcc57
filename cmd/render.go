package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// RenderCmd loads the supplied documents and prints their JSON projection.
type RenderCmd struct {
	Compact bool `short:"c" long:"compact" description:"Print the projection on one line"`
}

func (c *RenderCmd) Execute(args []string) error {
	bag, err := loadAll(context.Background(), args)
	if err != nil {
		return err
	}
	if c.Compact {
		fmt.Println(bag.String())
		return nil
	}
	data, err := json.MarshalIndent(bag, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
