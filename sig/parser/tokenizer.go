package parser

// Tokenizer scans one signature file's byte buffer into tokens. A token is a
// double-quoted string literal, a single-character separator, or a maximal
// run of non-space, non-separator characters. Any <...> span encountered
// mid-token keeps the token going so generic types like Map<K,V> or
// List<? extends Foo> stay in one piece, and string literals embedded in a
// token (annotation argument text) are skipped over rather than ending it.
//
// Two tokenizers never share state; each file gets its own instance.
type Tokenizer struct {
	file string
	buf  []byte
	pos  int
	line int
}

func NewTokenizer(file string, contents []byte) *Tokenizer {
	return &Tokenizer{
		file: file,
		buf:  contents,
		line: 1,
	}
}

// Line is the 1-based line number of the current position, used for
// diagnostics.
func (t *Tokenizer) Line() int {
	return t.line
}

// Offset returns the current byte position, for raw substring capture via
// StringFrom.
func (t *Tokenizer) Offset() int {
	return t.pos
}

// StringFrom returns the raw text between a previously captured offset and
// the current position.
func (t *Tokenizer) StringFrom(start int) string {
	return string(t.buf[start:t.pos])
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.buf)
}

func (t *Tokenizer) peek() byte {
	if t.pos >= len(t.buf) {
		return 0
	}
	return t.buf[t.pos]
}

func (t *Tokenizer) peekN(n int) byte {
	if t.pos+n >= len(t.buf) {
		return 0
	}
	return t.buf[t.pos+n]
}

func (t *Tokenizer) advance() byte {
	if t.pos >= len(t.buf) {
		return 0
	}
	ch := t.buf[t.pos]
	t.pos++
	if ch == '\n' {
		t.line++
	}
	return ch
}

// SkipWhitespace skips whitespace and //-line-comments. Line comments are
// handled by the tokenizer, not stripped from the buffer, so raw-capture
// spans keep them.
func (t *Tokenizer) SkipWhitespace() {
	for {
		ch := t.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			t.advance()
			continue
		}
		if ch == '/' && t.peekN(1) == '/' {
			for !t.eof() && t.peek() != '\n' {
				t.advance()
			}
			continue
		}
		return
	}
}

// Peek returns the next byte without consuming it, 0 at end of input.
func (t *Tokenizer) Peek() byte {
	return t.peek()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isSeparator(ch byte, parenIsSep bool) bool {
	switch ch {
	case '{', '}', ',', ';', '<', '>':
		return true
	case '(', ')':
		return parenIsSep
	}
	return false
}

// NextToken returns the next token, or "" at end of input. When parenIsSep
// is true, parentheses are single-character separators; otherwise they are
// ordinary token characters (annotation argument text).
func (t *Tokenizer) NextToken(parenIsSep bool) (string, error) {
	t.SkipWhitespace()
	if t.eof() {
		return "", nil
	}

	ch := t.peek()
	if ch == '"' {
		return t.scanStringLiteral()
	}
	if isSeparator(ch, parenIsSep) {
		t.advance()
		return string(ch), nil
	}

	start := t.pos
	genericDepth := 0
	for !t.eof() {
		ch = t.peek()
		if ch == '"' {
			if err := t.skipStringLiteral(); err != nil {
				return "", err
			}
			continue
		}
		if ch == '<' {
			genericDepth++
			t.advance()
			continue
		}
		if ch == '>' && genericDepth > 0 {
			genericDepth--
			t.advance()
			continue
		}
		if genericDepth > 0 {
			// Commas, spaces and brackets inside generic type arguments do
			// not terminate the token.
			t.advance()
			continue
		}
		if isSpace(ch) || isSeparator(ch, parenIsSep) {
			break
		}
		t.advance()
	}
	if genericDepth > 0 {
		return "", parseErrorf(t.file, t.line, "unexpected end of file inside generic type")
	}
	return t.StringFrom(start), nil
}

// RequireToken is NextToken but fails on end of input.
func (t *Tokenizer) RequireToken(parenIsSep bool) (string, error) {
	token, err := t.NextToken(parenIsSep)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", parseErrorf(t.file, t.line, "unexpected end of file")
	}
	return token, nil
}

// scanStringLiteral reads a double-quoted literal verbatim, escapes
// included. Newlines inside the literal are a hard error.
func (t *Tokenizer) scanStringLiteral() (string, error) {
	start := t.pos
	if err := t.skipStringLiteral(); err != nil {
		return "", err
	}
	return t.StringFrom(start), nil
}

func (t *Tokenizer) skipStringLiteral() error {
	t.advance() // opening quote
	for {
		if t.eof() {
			return parseErrorf(t.file, t.line, "unterminated string literal")
		}
		ch := t.peek()
		if ch == '\n' {
			return parseErrorf(t.file, t.line, "string literal contains line break")
		}
		if ch == '\\' {
			t.advance()
			t.advance()
			continue
		}
		t.advance()
		if ch == '"' {
			return nil
		}
	}
}

// ScanBalanced consumes raw text until the bracket depth for open/close
// returns to zero and returns it verbatim, embedded string literals skipped.
// With depth zero the scan must start at an opening bracket; a positive
// depth continues a span whose opening brackets were already consumed.
func (t *Tokenizer) ScanBalanced(open, close byte, depth int) (string, error) {
	start := t.pos
	if depth == 0 {
		if t.peek() != open {
			return "", parseErrorf(t.file, t.line, "expected '%c'", open)
		}
		t.advance()
		depth = 1
	}
	for depth > 0 {
		if t.eof() {
			return "", parseErrorf(t.file, t.line, "unexpected end of file, expected '%c'", close)
		}
		ch := t.peek()
		if ch == '"' {
			if err := t.skipStringLiteral(); err != nil {
				return "", err
			}
			continue
		}
		switch ch {
		case open:
			depth++
		case close:
			depth--
		}
		t.advance()
	}
	return t.StringFrom(start), nil
}

// ScanParameterDefault captures the raw default-value text of a parameter.
// A value starting with '{' is scanned brace-balanced and
// whitespace-preserving; anything else runs until a top-level ',' or ')',
// which stays unconsumed for the parameter-list parser.
func (t *Tokenizer) ScanParameterDefault() (string, error) {
	t.SkipWhitespace()
	if t.peek() == '{' {
		return t.ScanBalanced('{', '}', 0)
	}
	start := t.pos
	depth := 0
	for {
		if t.eof() {
			return "", parseErrorf(t.file, t.line, "unexpected end of file in parameter default value")
		}
		ch := t.peek()
		if ch == '"' {
			if err := t.skipStringLiteral(); err != nil {
				return "", err
			}
			continue
		}
		switch ch {
		case '(', '[', '{':
			depth++
		case ']', '}':
			depth--
		case ')':
			if depth == 0 {
				return t.StringFrom(start), nil
			}
			depth--
		case ',':
			if depth == 0 {
				return t.StringFrom(start), nil
			}
		}
		t.advance()
	}
}

// ScanUntilSemicolon captures a raw expression up to the next top-level ';',
// consuming the semicolon. Used for annotation-element default expressions,
// where whitespace is significant.
func (t *Tokenizer) ScanUntilSemicolon() (string, error) {
	t.SkipWhitespace()
	start := t.pos
	depth := 0
	for {
		if t.eof() {
			return "", parseErrorf(t.file, t.line, "unexpected end of file, expected ';'")
		}
		ch := t.peek()
		if ch == '"' {
			if err := t.skipStringLiteral(); err != nil {
				return "", err
			}
			continue
		}
		switch ch {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth == 0 {
				text := t.StringFrom(start)
				t.advance()
				return trimRight(text), nil
			}
		}
		t.advance()
	}
}

func trimRight(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}
