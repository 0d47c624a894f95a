package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/khalidelborai/gilt-tui/css/scanner"
)

// Parse parses stylesheet text into a typed Sheet for the given cascade
// layer. The returned error is non-nil only for lexical failures, which
// abort the parse. All other problems are reported as diagnostics while
// the surrounding rules survive.
func Parse(src string, layer Layer) (*Sheet, []Diagnostic, error) {
	toks, err := scanner.New(src).All()
	if err != nil {
		return nil, nil, err
	}
	p := &parser{toks: toks}
	sheet := &Sheet{Layer: layer}
	for !p.atEnd() {
		if rule, ok := p.parseRule(); ok {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	tracer().Debugf("parsed %s sheet: %d rules, %d diagnostics",
		layer, len(sheet.Rules), len(p.diags))
	return sheet, p.diags, nil
}

type parser struct {
	toks  []scanner.Token
	cur   int
	diags []Diagnostic
}

func (p *parser) atEnd() bool {
	return p.cur >= len(p.toks)
}

func (p *parser) peek() (scanner.Token, bool) {
	if p.atEnd() {
		return scanner.Token{}, false
	}
	return p.toks[p.cur], true
}

func (p *parser) advance() (scanner.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.cur++
	}
	return t, ok
}

// adjacent denotes whether the current token directly follows the
// previous one, without intervening whitespace.
func (p *parser) adjacent() bool {
	if p.cur == 0 || p.atEnd() {
		return false
	}
	return p.toks[p.cur].Start == p.toks[p.cur-1].End
}

func (p *parser) offset() int {
	if t, ok := p.peek(); ok {
		return t.Start
	}
	if n := len(p.toks); n > 0 {
		return p.toks[n-1].End
	}
	return 0
}

func (p *parser) diag(offset int, format string, args ...interface{}) {
	d := Diagnostic{Offset: offset, Msg: fmt.Sprintf(format, args...)}
	tracer().Debugf("diagnostic %s", d)
	p.diags = append(p.diags, d)
}

// skipRule recovers from a malformed rule by skipping past the next '}'.
func (p *parser) skipRule() {
	for {
		t, ok := p.advance()
		if !ok || t.Kind == scanner.BraceClose {
			return
		}
	}
}

// skipDeclaration recovers from a malformed declaration by skipping past
// the next ';', stopping short of the rule's closing '}'.
func (p *parser) skipDeclaration() {
	for {
		t, ok := p.peek()
		if !ok || t.Kind == scanner.BraceClose {
			return
		}
		p.cur++
		if t.Kind == scanner.Semicolon {
			return
		}
	}
}

func (p *parser) parseRule() (Rule, bool) {
	rule := Rule{Offset: p.offset()}
	selectors, ok := p.parseSelectorList()
	if !ok {
		p.skipRule()
		return Rule{}, false
	}
	rule.Selectors = selectors
	if t, ok := p.peek(); !ok || t.Kind != scanner.BraceOpen {
		p.diag(p.offset(), "expected '{' after selector, got %s", kindAt(t, ok))
		p.skipRule()
		return Rule{}, false
	}
	p.cur++
	for {
		t, ok := p.peek()
		if !ok {
			p.diag(p.offset(), "unexpected end of input, expected '}'")
			return rule, true
		}
		if t.Kind == scanner.BraceClose {
			p.cur++
			return rule, true
		}
		p.parseDeclaration(&rule)
	}
}

func (p *parser) parseSelectorList() ([]Selector, bool) {
	var selectors []Selector
	for {
		sel, ok := p.parseSelector()
		if !ok {
			return nil, false
		}
		selectors = append(selectors, sel)
		if t, ok := p.peek(); ok && t.Kind == scanner.Comma {
			p.cur++
			continue
		}
		return selectors, true
	}
}

func (p *parser) parseSelector() (Selector, bool) {
	var sel Selector
	first, ok := p.parseCompound()
	if !ok {
		return Selector{}, false
	}
	sel.Compounds = append(sel.Compounds, first)
	for {
		t, ok := p.peek()
		if !ok {
			return sel, true
		}
		switch t.Kind {
		case scanner.Greater:
			p.cur++
			next, ok := p.parseCompound()
			if !ok {
				return Selector{}, false
			}
			sel.Combinators = append(sel.Combinators, Child)
			sel.Compounds = append(sel.Compounds, next)
		case scanner.Ident, scanner.Hash, scanner.Dot, scanner.Star, scanner.PseudoClass:
			// a selector-starting token after whitespace means descendant;
			// an adjacent one would have been consumed by parseCompound
			next, ok := p.parseCompound()
			if !ok {
				return Selector{}, false
			}
			sel.Combinators = append(sel.Combinators, Descendant)
			sel.Compounds = append(sel.Compounds, next)
		default:
			return sel, true
		}
	}
}

func (p *parser) parseCompound() (Compound, bool) {
	var comp Compound
	t, ok := p.peek()
	if !ok {
		p.diag(p.offset(), "expected selector, got end of input")
		return Compound{}, false
	}
	switch t.Kind {
	case scanner.Ident:
		comp.Type = t.Lexeme
		p.cur++
	case scanner.Star:
		comp.Universal = true
		p.cur++
	case scanner.Dot, scanner.Hash, scanner.PseudoClass:
		if !p.compoundStep(&comp) {
			return Compound{}, false
		}
	default:
		p.diag(t.Start, "expected selector, got %s %q", t.Kind, t.Lexeme)
		return Compound{}, false
	}
	for p.adjacent() {
		t, _ := p.peek()
		switch t.Kind {
		case scanner.Dot, scanner.Hash, scanner.PseudoClass:
			if !p.compoundStep(&comp) {
				return Compound{}, false
			}
		default:
			return comp, true
		}
	}
	return comp, true
}

// compoundStep consumes one '.class', '#id' or ':pseudo' constraint.
func (p *parser) compoundStep(comp *Compound) bool {
	t, _ := p.advance()
	switch t.Kind {
	case scanner.Dot:
		name, ok := p.constraintName("class name", "'.'")
		if !ok {
			return false
		}
		comp.Classes = append(comp.Classes, name)
	case scanner.Hash:
		name, ok := p.constraintName("id", "'#'")
		if !ok {
			return false
		}
		comp.ID = name
	case scanner.PseudoClass:
		comp.Pseudos = append(comp.Pseudos, t.Lexeme[1:])
	}
	return true
}

// constraintName expects an identifier adjacent to the '.' or '#' just
// consumed.
func (p *parser) constraintName(what, after string) (string, bool) {
	if !p.adjacent() {
		p.diag(p.offset(), "expected %s directly after %s", what, after)
		return "", false
	}
	t, ok := p.advance()
	if !ok || t.Kind != scanner.Ident {
		p.diag(p.offset(), "expected %s after %s, got %s", what, after, kindAt(t, ok))
		return "", false
	}
	return t.Lexeme, true
}

func (p *parser) parseDeclaration(rule *Rule) {
	nameTok, _ := p.advance()
	if nameTok.Kind != scanner.Ident {
		p.diag(nameTok.Start, "expected property name, got %s %q", nameTok.Kind, nameTok.Lexeme)
		p.skipDeclaration()
		return
	}
	if t, ok := p.peek(); !ok || t.Kind != scanner.Colon {
		p.diag(p.offset(), "expected ':' after property %q, got %s", nameTok.Lexeme, kindAt(t, ok))
		p.skipDeclaration()
		return
	}
	p.cur++

	var values []scanner.Token
	important := false
	for {
		t, ok := p.peek()
		if !ok || t.Kind == scanner.Semicolon || t.Kind == scanner.BraceClose {
			break
		}
		if t.Kind == scanner.Important {
			p.cur++
			important = true
			break
		}
		p.cur++
		values = append(values, t)
	}
	if t, ok := p.peek(); ok && t.Kind == scanner.Semicolon {
		p.cur++
	}

	target := &rule.Declared
	if important {
		target = &rule.Important
	}
	if d := applyDeclaration(target, nameTok.Lexeme, nameTok.Start, values); d != nil {
		p.diags = append(p.diags, *d)
	}
}

func kindAt(t scanner.Token, ok bool) string {
	if !ok {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
