package ast

import (
	"strings"

	"github.com/reusee/clipc/syntax"
)

// Build converts a parse tree into a Program. Missing optional structure
// yields absent values.
func Build(root *syntax.Node) *Program {
	prog := &Program{
		Pos: tokenOf(root.Child(0)).Pos,
	}
	prog.Statements = buildBlock(root.Child(1))
	return prog
}

func tokenOf(n *syntax.Node) syntax.Token {
	if n == nil || n.Token == nil {
		return syntax.Token{}
	}
	return *n.Token
}

// buildBlock reads the statement list of a Block node.
func buildBlock(block *syntax.Node) []Stmt {
	ret := []Stmt{}
	list := block.Child(1)
	for list.Is(syntax.NStmtList) && len(list.Children) > 0 {
		if stmt := buildStmt(list.Child(0)); stmt != nil {
			ret = append(ret, stmt)
		}
		list = list.Child(1)
	}
	return ret
}

func buildStmt(stmt *syntax.Node) Stmt {
	n := stmt.Child(0)
	if n == nil {
		return nil
	}
	switch n.Symbol.Nonterminal() {

	case syntax.NVarDecl:
		// Type : IDENT VarInitOpt
		typ := tokenOf(n.Child(0).Child(0))
		name := tokenOf(n.Child(2))
		decl := &VarDecl{
			Pos:  name.Pos,
			Type: typ.Text,
			Name: name.Text,
		}
		if init := n.Child(3); init != nil && len(init.Children) > 0 {
			decl.Init = buildExpr(init.Child(1))
		}
		return decl

	case syntax.NAssignment:
		// IDENT = Expr
		name := tokenOf(n.Child(0))
		return &Assignment{
			Pos:   name.Pos,
			Name:  name.Text,
			Value: buildExpr(n.Child(2)),
		}

	case syntax.NIfStmt:
		// if ( Expr ) Block ElseOpt
		ret := &IfStmt{
			Pos:  tokenOf(n.Child(0)).Pos,
			Cond: buildExpr(n.Child(2)),
			Then: buildBlock(n.Child(4)),
		}
		if elseOpt := n.Child(5); elseOpt != nil && len(elseOpt.Children) > 0 {
			ret.Else = buildBlock(elseOpt.Child(1))
		}
		return ret

	case syntax.NWhileStmt:
		// while ( Expr ) Block
		return &WhileStmt{
			Pos:  tokenOf(n.Child(0)).Pos,
			Cond: buildExpr(n.Child(2)),
			Body: buildBlock(n.Child(4)),
		}

	case syntax.NExportStmt:
		// export IDENT as STRING
		return &ExportStmt{
			Pos:    tokenOf(n.Child(0)).Pos,
			Name:   tokenOf(n.Child(1)).Text,
			Output: unquote(tokenOf(n.Child(3)).Text),
		}

	case syntax.NExpr:
		if expr := buildExpr(n); expr != nil {
			return expr
		}
	}

	return nil
}

// buildExpr folds an Expr subtree.
func buildExpr(n *syntax.Node) Expr {
	if n == nil {
		return nil
	}
	return fold(n.Leaves())
}

// operand returns the leaf expression of a token, or nil for other tokens.
func operand(tok syntax.Token) Expr {
	switch tok.Type {
	case syntax.TokenIdentifier:
		return &Identifier{Pos: tok.Pos, Name: tok.Text}
	case syntax.TokenIntLiteral:
		return &Literal{Pos: tok.Pos, Kind: IntLiteral, Value: tok.Text}
	case syntax.TokenFloatLiteral:
		return &Literal{Pos: tok.Pos, Kind: FloatLiteral, Value: tok.Text}
	case syntax.TokenStringLiteral:
		return &Literal{Pos: tok.Pos, Kind: StringLiteral, Value: unquote(tok.Text)}
	}
	return nil
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
