package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags, the same library used by other Viant CLIs.
type Options struct {
	Render *RenderCmd `command:"render" description:"Load documents and print the merged JSON projection"`
	Get    *GetCmd    `command:"get"    description:"Look up one attribute (optionally a field of it) across documents"`
	Keys   *KeysCmd   `command:"keys"   description:"List top-level normalized keys"`
	Merge  *MergeCmd  `command:"merge"  description:"Merge documents with the merge-recursive policy and print the result"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "render":
		o.Render = &RenderCmd{}
	case "get":
		o.Get = &GetCmd{}
	case "keys":
		o.Keys = &KeysCmd{}
	case "merge":
		o.Merge = &MergeCmd{}
	}
}
