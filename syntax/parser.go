package syntax

import (
	"fmt"
	"strings"

	"github.com/reusee/clipc/diags"
)

type SyntaxError struct {
	Kind        diags.Kind
	Pos         Pos
	Got         Token
	Expected    []TokenType
	Nonterminal string
}

func (e *SyntaxError) Message() string {
	got := e.Got.Type.String()
	if e.Got.Text != "" {
		got += fmt.Sprintf(" ('%s')", e.Got.Text)
	}
	switch {
	case e.Kind == diags.TableIntegrityFailure:
		return fmt.Sprintf("no table row for nonterminal %s", e.Nonterminal)
	case len(e.Expected) == 1:
		return fmt.Sprintf("expected %s, got %s", e.Expected[0], got)
	}
	names := make([]string, 0, len(e.Expected))
	for _, t := range e.Expected {
		names = append(names, t.String())
	}
	return fmt.Sprintf("unexpected token %s, expected one of: %s", got, strings.Join(names, ", "))
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message())
}

func (e *SyntaxError) Diagnostic() diags.Diagnostic {
	return diags.Diagnostic{
		Phase:   diags.PhaseSyntactic,
		Kind:    e.Kind,
		Pos:     e.Pos,
		Message: e.Message(),
	}
}

type parser struct {
	tokens  []Token
	table   *Table
	cursor  int
	stack   []*Node
	recover bool

	errs          []error
	lastErrCursor int
}

// Parse derives a parse tree from tokens, failing on the first syntax error.
func Parse(tokens []Token, table *Table) (*Node, error) {
	p := &parser{
		tokens: tokens,
		table:  table,
	}
	root := p.run()
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	return root, nil
}

// ParseRecover keeps parsing after syntax errors by skipping to the next
// statement boundary. The tree is only meaningful when no error is returned.
func ParseRecover(tokens []Token, table *Table) (*Node, []error) {
	p := &parser{
		tokens:        tokens,
		table:         table,
		recover:       true,
		lastErrCursor: -1,
	}
	root := p.run()
	return root, p.errs
}

func (p *parser) current() Token {
	if p.cursor < len(p.tokens) {
		return p.tokens[p.cursor]
	}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		return Token{Type: TokenEOF, Pos: last.Pos}
	}
	return Token{Type: TokenEOF, Pos: Pos{Line: 1, Column: 1}}
}

func (p *parser) advance() {
	if p.cursor < len(p.tokens) {
		p.cursor++
	}
}

func (p *parser) push(n *Node) {
	p.stack = append(p.stack, n)
}

func (p *parser) pop() *Node {
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return n
}

func (p *parser) run() *Node {
	root := &Node{
		Symbol: N(p.table.Start()),
	}
	p.push(root)

	for len(p.stack) > 0 {
		node := p.pop()
		la := p.current()

		if node.IsTerminal() {
			if node.Symbol.Terminal() == la.Type {
				tok := la
				node.Token = &tok
				p.advance()
				continue
			}
			p.push(node)
			if !p.fail(&SyntaxError{
				Kind:     diags.UnexpectedToken,
				Pos:      la.Pos,
				Got:      la,
				Expected: []TokenType{node.Symbol.Terminal()},
			}) {
				break
			}
			continue
		}

		name := node.Symbol.Nonterminal()
		prod, ok, hasRow := p.table.Lookup(name, la.Type)
		if !hasRow {
			p.errs = append(p.errs, &SyntaxError{
				Kind:        diags.TableIntegrityFailure,
				Pos:         la.Pos,
				Got:         la,
				Nonterminal: name,
			})
			break
		}
		if !ok {
			p.push(node)
			if !p.fail(&SyntaxError{
				Kind:        diags.UnexpectedToken,
				Pos:         la.Pos,
				Got:         la,
				Expected:    p.table.Expected(name),
				Nonterminal: name,
			}) {
				break
			}
			continue
		}

		node.Children = make([]*Node, 0, len(prod))
		for _, sym := range prod {
			node.Children = append(node.Children, &Node{
				Symbol: sym,
			})
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			p.push(node.Children[i])
		}
	}

	return root
}

// fail records err and reports whether parsing continues.
func (p *parser) fail(err *SyntaxError) bool {
	p.errs = append(p.errs, err)
	if !p.recover {
		return false
	}
	return p.resync()
}

// resync unwinds to the innermost pending statement list and skips input to
// a statement boundary. The failed node is still on the stack.
func (p *parser) resync() bool {
	for len(p.stack) > 0 && !p.stack[len(p.stack)-1].Is(NStmtList) {
		p.pop()
	}
	if len(p.stack) == 0 {
		return false
	}

	if p.cursor == p.lastErrCursor {
		// no progress since the last error
		if p.current().Type == TokenEOF {
			return false
		}
		p.advance()
	}
	p.lastErrCursor = p.cursor

	for {
		la := p.current().Type
		switch {
		case la == TokenEOF:
			return false
		case la == TokenSemicolon:
			p.advance()
			return true
		case la == TokenRBrace:
			return true
		}
		if _, ok, _ := p.table.Lookup(NStmtList, la); ok {
			return true
		}
		p.advance()
	}
}
