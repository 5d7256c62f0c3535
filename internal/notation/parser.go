// Package notation implements the grammar of the compact request notation:
//
//	METHOD SP URI [SP VERSION] LF
//	NAME[:] (SP VALUE)* LF
//	...
//	LF
//	BODY
//
// It scans bytes with tokenizer.Scanner directly into Request values.
package notation

import (
	"bytes"
	"strings"

	"github.com/shapestone/shape-httpreq/internal/tokenizer"
)

// Request is a parsed request.
type Request struct {
	Method  string
	URI     string
	Version string // "" when the request line has no third token
	Headers []Header
	Body    []byte // nil when there is no blank line or nothing follows it
}

// Header is a name-value pair.
type Header struct {
	Name  string
	Value string
}

var colon = []byte(":")

// Parser drives a Scanner through the request grammar.
type Parser struct {
	s   *tokenizer.Scanner
	req Request

	tokPos int // start of the token being read, for error reporting
}

// NewParser creates a parser for the given data. data is never modified.
func NewParser(data []byte) *Parser {
	return &Parser{s: tokenizer.NewScanner(data)}
}

// ParseRequest parses the whole input. On error no partial request is returned.
func (p *Parser) ParseRequest() (*Request, error) {
	method, ok := p.nextBytes()
	if !ok {
		return nil, p.fail(ErrMissingMethod, "")
	}
	p.req.Method = internMethod(method)

	uri, ok := p.next()
	if !ok {
		return nil, p.fail(ErrMissingURI, "")
	}
	p.req.URI = uri

	// An empty version slot leaves Version unset; the separator check
	// below reports it.
	if !p.s.IsEnd() && !p.s.WasNewline() {
		if version, ok := p.next(); ok {
			p.req.Version = version
		}
	}

	if p.s.IsEnd() {
		return p.finish(), nil
	}

	if !p.s.WasNewline() {
		for p.s.SkipSpace() {
		}
		extra, _ := p.next()
		return nil, p.fail(ErrUnexpectedExtraToken, extra)
	}

	if err := p.parseHeaders(); err != nil {
		return nil, err
	}

	return p.finish(), nil
}

// parseHeaders reads header lines until a blank line or the end of input.
func (p *Parser) parseHeaders() error {
	for !p.s.IsEnd() {
		// Blank line: end of headers, the body starts at the cursor.
		if p.s.IsNewline() {
			p.s.SkipNewline()
			return nil
		}

		name, ok := p.nextBytes()
		if !ok {
			return p.fail(ErrEmptyToken, "")
		}
		// A bare ":" yields an empty name; emitters decide whether to accept it.
		name = bytes.TrimSuffix(name, colon)

		p.req.Headers = append(p.req.Headers, Header{
			Name:  internHeaderName(name),
			Value: p.parseValue(),
		})
	}
	return nil
}

// parseValue collects value tokens up to the end of the line and joins them
// with single spaces. A name followed directly by LF has an empty value.
func (p *Parser) parseValue() string {
	var parts []string

	for !p.s.IsEnd() && !p.s.WasNewline() {
		part, ok := p.next()
		if ok {
			parts = append(parts, part)
			continue
		}
		// Runs of spaces collapse; a space right before LF still ends the line.
		if p.s.SkipSpace() {
			continue
		}
		p.s.SkipNewline()
		break
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts, " ")
	}
}

func (p *Parser) finish() *Request {
	req := p.req
	if rest := p.s.Rest(); len(rest) > 0 {
		req.Body = make([]byte, len(rest))
		copy(req.Body, rest)
	}
	return &req
}

// next reads a token as an owned string.
func (p *Parser) next() (string, bool) {
	tok, ok := p.nextBytes()
	if !ok {
		return "", false
	}
	return string(tok), true
}

// nextBytes reads a token borrowed from the input and remembers where it started.
func (p *Parser) nextBytes() ([]byte, bool) {
	p.tokPos = p.s.Pos()
	return p.s.Next()
}

func (p *Parser) fail(kind error, token string) error {
	return &SyntaxError{
		Kind:     kind,
		Token:    token,
		Method:   p.req.Method,
		URI:      p.req.URI,
		Line:     p.s.LineAt(p.tokPos),
		Position: p.tokPos,
	}
}
