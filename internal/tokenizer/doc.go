// Package tokenizer declares the external collaborator interface for
// language tokenizing: the buffer core consumes a sorted token stream and
// treats it as opaque except for a handful of kinds it needs for autoindent
// and identifier queries. No tokenizer implementation lives here; callers
// (tests, cmd/cmantic) supply their own Tokenizer.
package tokenizer
