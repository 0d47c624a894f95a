/*
Package scanner tokenizes stylesheet text.

The scanner produces a lazy, finite sequence of tokens with byte offsets.
It recognizes identifiers, #id and .class prefixes, hex colors, numeric
literals with unit suffixes (bare cells, %, fr, vw, vh), quoted strings,
pseudo-class colons, combinators and punctuation. Block comments are
skipped as whitespace.

Scanning fails hard on unterminated strings or illegal characters: the
scanner reports a SyntaxError carrying the offending byte offset and
yields no further tokens. Recovery policy is the caller's choice.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scanner

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.css'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.css")
}
