// Package cmd implements all sub-commands that make up the attrs
// command-line interface.  Each file in this directory registers a single
// sub-command (render, get, keys, merge); plumbing shared between commands,
// such as document loading and merging, lives in shared.go.
package cmd
