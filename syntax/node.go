package syntax

import (
	"strings"
)

// Node is a parse tree node. Terminal leaves carry the matched token.
type Node struct {
	Symbol   Symbol
	Token    *Token
	Children []*Node
}

func (n *Node) IsTerminal() bool {
	return n.Symbol.IsTerminal()
}

// Is reports whether n is labeled by the named nonterminal.
func (n *Node) Is(nonterminal string) bool {
	return n != nil && !n.Symbol.IsTerminal() && n.Symbol.Nonterminal() == nonterminal
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Leaves returns the matched tokens in left-to-right order.
func (n *Node) Leaves() []Token {
	var ret []Token
	n.Walk(func(node *Node) bool {
		if node.Token != nil {
			ret = append(ret, *node.Token)
		}
		return true
	})
	return ret
}

// Walk visits nodes in pre-order. Returning false skips the children of a node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

func (n *Node) Outline() string {
	var sb strings.Builder
	n.outline(&sb, 0)
	return sb.String()
}

func (n *Node) outline(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Symbol.String())
	if n.Token != nil && n.Token.Text != "" {
		sb.WriteString(" ")
		sb.WriteString(n.Token.Text)
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.outline(sb, depth+1)
	}
}
