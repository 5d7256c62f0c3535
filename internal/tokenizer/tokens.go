// Package tokenizer provides the scanners used by the request notation.
//
// Scanner is the cursor the grammar drives. NewTokenizer builds a shape-core
// tokenizer over the same lexical rules for tools that want the whole token
// stream at once (highlighting, diagnostics).
package tokenizer

// Token kinds produced by NewTokenizer.
const (
	TokenWord = "Word" // maximal run without SP or LF: method, uri, version, header name or value part
	TokenSP   = "SP"   // a single space separator
	TokenLF   = "LF"   // a line feed; two in a row end the header section
)
