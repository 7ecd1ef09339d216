package syntax

// Symbol is a grammar symbol: either a terminal token type or a nonterminal name.
type Symbol struct {
	terminal    TokenType
	nonterminal string
}

func T(t TokenType) Symbol {
	return Symbol{terminal: t}
}

func N(name string) Symbol {
	return Symbol{nonterminal: name}
}

func (s Symbol) IsTerminal() bool {
	return s.nonterminal == ""
}

func (s Symbol) Terminal() TokenType {
	return s.terminal
}

func (s Symbol) Nonterminal() string {
	return s.nonterminal
}

func (s Symbol) String() string {
	if s.IsTerminal() {
		return s.terminal.String()
	}
	return s.nonterminal
}

// Production is an ordered right-hand side. An empty production is epsilon.
type Production []Symbol

func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return "ε"
	}
	var buf []byte
	for i, sym := range p {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, sym.String()...)
	}
	return string(buf)
}
