package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a shape-core tokenizer for the request notation.
// The notation only knows two separators, so three matchers cover every input:
// 1. LF (line ending)
// 2. SP (token separator)
// 3. Word (everything else up to the next SP or LF)
//
// Whitespace is significant, so the default whitespace skipper is not used.
// CR is not a separator and ends up inside Word tokens.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		LFMatcher(),
		SPMatcher(),
		WordMatcher(),
	)
}

// NewTokenizerWithStream creates a notation tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// LFMatcher matches a single line feed.
func LFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\n' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenLF, []rune{'\n'})
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenSP, []rune{' '})
	}
}

// WordMatcher matches any sequence of characters until SP, LF, or EOS.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == ' ' || r == '\n' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenWord, value)
	}
}
