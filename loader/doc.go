// Package loader turns YAML or JSON mapping documents into attribute bags.
// Documents are fetched with viant/afs, so any storage scheme afs understands
// (local paths, s3://, gs://, mem:// ...) works as a source.  The package
// also keeps a registry of Go types (viant/x) so a document can be decoded
// straight into a registered typed view.
package loader
