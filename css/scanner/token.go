package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// TokenKind classifies a lexical token.
type TokenKind int

const (
	EOF TokenKind = iota

	Ident       // property names, selector type names, keywords
	HexColor    // #fff, #ff00aa, #ff00aa80
	Dimension   // number with unit suffix: 1fr, 50%, 10vw, 80vh
	Number      // bare number, meaning cells: 10, -5, 3.14
	String      // quoted string literal, quotes stripped
	PseudoClass // :hover, :focus; lexeme keeps the leading colon
	Important   // !important

	BraceOpen  // {
	BraceClose // }
	Colon      // :
	Semicolon  // ;
	Comma      // ,
	Dot        // .
	Hash       // #
	Star       // *
	Greater    // >
)

var tokenNames = [...]string{
	EOF:         "EOF",
	Ident:       "Ident",
	HexColor:    "HexColor",
	Dimension:   "Dimension",
	Number:      "Number",
	String:      "String",
	PseudoClass: "PseudoClass",
	Important:   "Important",
	BraceOpen:   "BraceOpen",
	BraceClose:  "BraceClose",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Dot:         "Dot",
	Hash:        "Hash",
	Star:        "Star",
	Greater:     "Greater",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "<invalid token>"
}

// Token is a lexical token with its literal text and byte span in the
// source buffer. End is exclusive; the parser uses Start/End adjacency
// to distinguish compound selectors from descendant combinators.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Start  int
	End    int
}
