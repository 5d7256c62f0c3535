package httpreq

import (
	"fmt"

	"github.com/shapestone/shape-httpreq/internal/tokenizer"
)

// Token kinds reported by Lex.
const (
	TokenWord = tokenizer.TokenWord
	TokenSP   = tokenizer.TokenSP
	TokenLF   = tokenizer.TokenLF
)

// Token is one lexical element of request notation.
type Token struct {
	Kind  string // TokenWord, TokenSP or TokenLF
	Value string
}

// Lex splits input into words and separators without applying the grammar.
// Concatenating the values reproduces the input. It is meant for tools such
// as highlighters; use Unmarshal to get a Request.
func Lex(input string) ([]Token, error) {
	tok := tokenizer.NewTokenizer()
	tok.Initialize(input)

	tokens, eos := tok.Tokenize()

	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Kind: t.Kind(), Value: t.ValueString()}
	}

	if !eos {
		return out, fmt.Errorf("httpreq: Lex: input not fully consumed after %d tokens", len(out))
	}
	return out, nil
}
