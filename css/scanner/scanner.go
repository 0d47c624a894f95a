package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import "fmt"

// SyntaxError reports a lexical error together with the byte offset of the
// offending character.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: %s", e.Offset, e.Msg)
}

// Scanner is a lazy tokenizer over a stylesheet source buffer. Clients call
// Next repeatedly until an EOF token or an error is returned. Errors are
// sticky: once the scanner failed, Next keeps returning the same error.
//
// A scanner holds no external resources and may simply be discarded. To
// restart, create a fresh scanner over the same buffer.
type Scanner struct {
	src string
	pos int
	err error
}

// New creates a scanner over a source buffer.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token. At the end of input it returns a token of
// kind EOF (repeatedly, if called again).
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if err := s.skipSpace(); err != nil {
		return s.fail(err)
	}
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Start: s.pos, End: s.pos}, nil
	}
	start := s.pos
	c := s.src[s.pos]
	switch {
	case c == '!':
		return s.scanImportant()
	case c == '#':
		return s.scanHash()
	case c == ':':
		return s.scanColon()
	case c == '"' || c == '\'':
		return s.scanString(c)
	case isDigit(c), c == '-' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1]):
		return s.scanNumeric()
	case isIdentStart(c):
		s.pos++
		for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
			s.pos++
		}
		return s.emit(Ident, start)
	}
	if kind, ok := punctuation[c]; ok {
		s.pos++
		return s.emit(kind, start)
	}
	return s.fail(&SyntaxError{Offset: start, Msg: fmt.Sprintf("illegal character %q", c)})
}

// All drains the scanner into a token slice, excluding the final EOF token.
func (s *Scanner) All() ([]Token, error) {
	var toks []Token
	for {
		t, err := s.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == EOF {
			return toks, nil
		}
		toks = append(toks, t)
	}
}

var punctuation = map[byte]TokenKind{
	'{': BraceOpen,
	'}': BraceClose,
	';': Semicolon,
	',': Comma,
	'.': Dot,
	'*': Star,
	'>': Greater,
}

// skipSpace advances over whitespace and block comments.
func (s *Scanner) skipSpace() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' {
			s.pos++
			continue
		}
		if c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*' {
			open := s.pos
			s.pos += 2
			for {
				if s.pos+1 >= len(s.src) {
					return &SyntaxError{Offset: open, Msg: "unterminated comment"}
				}
				if s.src[s.pos] == '*' && s.src[s.pos+1] == '/' {
					s.pos += 2
					break
				}
				s.pos++
			}
			continue
		}
		return nil
	}
	return nil
}

// scanImportant scans the '!important' flag. A lone '!' is illegal.
func (s *Scanner) scanImportant() (Token, error) {
	start := s.pos
	const flag = "!important"
	if len(s.src)-s.pos >= len(flag) && s.src[s.pos:s.pos+len(flag)] == flag {
		s.pos += len(flag)
		return s.emit(Important, start)
	}
	return s.fail(&SyntaxError{Offset: start, Msg: "expected '!important'"})
}

// scanHash scans either a hex color (3 or more hex digits after '#') or a
// bare '#' introducing an id selector. '#fff' is a color token, never a
// hash followed by an identifier.
func (s *Scanner) scanHash() (Token, error) {
	start := s.pos
	s.pos++
	run := 0
	for s.pos+run < len(s.src) && isHexDigit(s.src[s.pos+run]) && run < 8 {
		run++
	}
	if run >= 3 {
		s.pos += run
		return s.emit(HexColor, start)
	}
	return s.emit(Hash, start)
}

// scanColon scans a pseudo-class when a name letter follows the colon,
// a plain colon otherwise. ':hover' is one token; note that this makes
// whitespace after a declaration's colon significant when the value is
// a keyword.
func (s *Scanner) scanColon() (Token, error) {
	start := s.pos
	s.pos++
	if s.pos < len(s.src) && isLetter(s.src[s.pos]) {
		for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
			s.pos++
		}
		return s.emit(PseudoClass, start)
	}
	return s.emit(Colon, start)
}

// scanString scans a quoted string. Escapes are not interpreted. The
// token's lexeme excludes the quotes.
func (s *Scanner) scanString(quote byte) (Token, error) {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		if s.src[s.pos] == quote {
			s.pos++
			t := Token{Kind: String, Lexeme: s.src[start+1 : s.pos-1], Start: start, End: s.pos}
			return t, nil
		}
		s.pos++
	}
	return s.fail(&SyntaxError{Offset: start, Msg: "unterminated string"})
}

// scanNumeric scans a number, optionally followed by a unit suffix which
// turns it into a dimension. '1fr' is a single dimension token.
func (s *Scanner) scanNumeric() (Token, error) {
	start := s.pos
	if s.src[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos+1 < len(s.src) && s.src[s.pos] == '.' && isDigit(s.src[s.pos+1]) {
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}
	if s.pos < len(s.src) && s.src[s.pos] == '%' {
		s.pos++
		return s.emit(Dimension, start)
	}
	if s.pos+1 < len(s.src) {
		switch s.src[s.pos : s.pos+2] {
		case "fr", "vw", "vh":
			s.pos += 2
			return s.emit(Dimension, start)
		}
	}
	return s.emit(Number, start)
}

func (s *Scanner) emit(kind TokenKind, start int) (Token, error) {
	t := Token{Kind: kind, Lexeme: s.src[start:s.pos], Start: start, End: s.pos}
	tracer().Debugf("token %s %q at %d", t.Kind, t.Lexeme, t.Start)
	return t, nil
}

func (s *Scanner) fail(err error) (Token, error) {
	s.err = err
	return Token{}, err
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isIdentStart(c byte) bool { return isLetter(c) || c == '_' }

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '-'
}
