package tokenizer

// Scanner is a cursor over an immutable request buffer. It yields tokens
// delimited by a single SP or LF and remembers which separator was consumed
// last, which is all the grammar needs to tell "more tokens on this line"
// from "next line".
//
// A Scanner never allocates while scanning; the slices returned by Next
// borrow from the buffer.
type Scanner struct {
	buf     []byte
	pos     int
	lastSep byte // separator consumed by the previous Next or SkipNewline, 0 at EOS
}

// NewScanner creates a scanner positioned at the start of buf.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Next returns the token at the cursor and advances past it and the
// separator that follows it. It returns false without advancing when the
// cursor stands on a separator or at the end of input.
func (s *Scanner) Next() ([]byte, bool) {
	start := s.pos
	end := start
	for end < len(s.buf) && !isSeparator(s.buf[end]) {
		end++
	}

	if start == end {
		return nil, false
	}

	if end < len(s.buf) {
		s.lastSep = s.buf[end]
		s.pos = end + 1
	} else {
		s.lastSep = 0
		s.pos = end
	}

	return s.buf[start:end], true
}

// WasNewline reports whether the separator consumed by the previous call to
// Next (or SkipNewline) was LF.
func (s *Scanner) WasNewline() bool {
	return s.lastSep == '\n'
}

// IsNewline reports whether an LF stands at the cursor with no token before it.
func (s *Scanner) IsNewline() bool {
	return s.pos < len(s.buf) && s.buf[s.pos] == '\n'
}

// SkipNewline consumes the LF at the cursor. It is a no-op otherwise.
func (s *Scanner) SkipNewline() {
	if s.IsNewline() {
		s.pos++
		s.lastSep = '\n'
	}
}

// SkipSpace consumes a single SP at the cursor and reports whether it did.
func (s *Scanner) SkipSpace() bool {
	if s.pos < len(s.buf) && s.buf[s.pos] == ' ' {
		s.pos++
		s.lastSep = ' '
		return true
	}
	return false
}

// IsEnd reports whether the cursor is at or past the end of input.
func (s *Scanner) IsEnd() bool {
	return s.pos >= len(s.buf)
}

// Rest returns every unconsumed byte. The result borrows from the buffer.
func (s *Scanner) Rest() []byte {
	if s.IsEnd() {
		return nil
	}
	return s.buf[s.pos:]
}

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// LineAt returns the 1-indexed line containing the byte at offset.
func (s *Scanner) LineAt(offset int) int {
	line := 1
	for i := 0; i < offset && i < len(s.buf); i++ {
		if s.buf[i] == '\n' {
			line++
		}
	}
	return line
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '\n'
}
