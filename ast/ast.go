// Package ast holds the typed syntax tree of the editing language.
package ast

import (
	"strings"

	"github.com/reusee/clipc/syntax"
)

type Pos = syntax.Pos

type Node interface {
	Position() Pos
	node()
}

type Stmt interface {
	Node
	stmt()
}

// Expr is also a Stmt: bare expressions may stand as statements.
type Expr interface {
	Stmt
	expr()
}

type Program struct {
	Pos        Pos
	Statements []Stmt
}

type VarDecl struct {
	Pos  Pos
	Type string
	Name string
	Init Expr // nil when absent
}

type Assignment struct {
	Pos   Pos
	Name  string
	Value Expr
}

type ExportStmt struct {
	Pos    Pos
	Name   string
	Output string
}

type IfStmt struct {
	Pos  Pos
	Cond Expr
	Then []Stmt
	Else []Stmt // nil when there is no else branch
}

type WhileStmt struct {
	Pos  Pos
	Cond Expr
	Body []Stmt
}

type BinaryOp struct {
	Pos   Pos
	Op    syntax.TokenType
	Left  Expr
	Right Expr
}

type UnaryOp struct {
	Pos     Pos
	Op      syntax.TokenType
	Operand Expr
}

type LiteralKind uint8

const (
	IntLiteral LiteralKind = iota + 1
	FloatLiteral
	StringLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case IntLiteral:
		return "int"
	case FloatLiteral:
		return "float"
	case StringLiteral:
		return "string"
	}
	return "invalid"
}

// Literal keeps the source text of numbers and the unquoted contents of strings.
type Literal struct {
	Pos   Pos
	Kind  LiteralKind
	Value string
}

type Identifier struct {
	Pos  Pos
	Name string
}

type FunctionCall struct {
	Pos  Pos
	Op   syntax.TokenType
	Args []Expr
}

// Name returns the operation name without the sigil.
func (f *FunctionCall) Name() string {
	return strings.TrimPrefix(syntax.OperationName(f.Op), "@")
}

func (p *Program) Position() Pos      { return p.Pos }
func (v *VarDecl) Position() Pos      { return v.Pos }
func (a *Assignment) Position() Pos   { return a.Pos }
func (e *ExportStmt) Position() Pos   { return e.Pos }
func (i *IfStmt) Position() Pos       { return i.Pos }
func (w *WhileStmt) Position() Pos    { return w.Pos }
func (b *BinaryOp) Position() Pos     { return b.Pos }
func (u *UnaryOp) Position() Pos      { return u.Pos }
func (l *Literal) Position() Pos      { return l.Pos }
func (i *Identifier) Position() Pos   { return i.Pos }
func (f *FunctionCall) Position() Pos { return f.Pos }

func (*Program) node()      {}
func (*VarDecl) node()      {}
func (*Assignment) node()   {}
func (*ExportStmt) node()   {}
func (*IfStmt) node()       {}
func (*WhileStmt) node()    {}
func (*BinaryOp) node()     {}
func (*UnaryOp) node()      {}
func (*Literal) node()      {}
func (*Identifier) node()   {}
func (*FunctionCall) node() {}

func (*VarDecl) stmt()      {}
func (*Assignment) stmt()   {}
func (*ExportStmt) stmt()   {}
func (*IfStmt) stmt()       {}
func (*WhileStmt) stmt()    {}
func (*BinaryOp) stmt()     {}
func (*UnaryOp) stmt()      {}
func (*Literal) stmt()      {}
func (*Identifier) stmt()   {}
func (*FunctionCall) stmt() {}

func (*BinaryOp) expr()     {}
func (*UnaryOp) expr()      {}
func (*Literal) expr()      {}
func (*Identifier) expr()   {}
func (*FunctionCall) expr() {}

// OperatorText returns the canonical spelling of an operator token.
func OperatorText(t syntax.TokenType) string {
	switch t {
	case syntax.TokenPlus:
		return "+"
	case syntax.TokenMinus:
		return "-"
	case syntax.TokenStar:
		return "*"
	case syntax.TokenSlash:
		return "/"
	case syntax.TokenEq:
		return "=="
	case syntax.TokenNotEq:
		return "!="
	case syntax.TokenLess:
		return "<"
	case syntax.TokenGreater:
		return ">"
	case syntax.TokenLessEq:
		return "<="
	case syntax.TokenGreaterEq:
		return ">="
	case syntax.TokenAnd:
		return "and"
	case syntax.TokenOr:
		return "or"
	case syntax.TokenNot:
		return "not"
	}
	return t.String()
}
