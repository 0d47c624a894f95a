/*
Package parser builds typed stylesheets from stylesheet text.

The parser is a recursive descent over the token stream of package
scanner. Its output is a Sheet of rules with fully typed declarations:
property names and values are validated against the closed property table
while parsing, so later cascade stages never see malformed input.

Failure comes in two severities. A lexical error aborts the parse and is
returned as the error value. Everything else is a Diagnostic: a malformed
declaration is skipped up to the next ';', a malformed selector skips the
whole rule up to its closing '}', and in both cases parsing continues so
that valid rules survive.

Selectors distinguish compound steps from combinators by token adjacency:
'Panel.item' is one compound constraining type and class, while
'Panel .item' is two compounds joined by a descendant combinator.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.css'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.css")
}
