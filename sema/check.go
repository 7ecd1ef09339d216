package sema

import (
	"fmt"

	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/diags"
	"github.com/reusee/clipc/syntax"
)

type Result struct {
	// in statement order
	Diagnostics []diags.Diagnostic
	// top-level bindings after the last statement
	Symbols Scope
}

type checker struct {
	diagnostics []diags.Diagnostic
}

// Check type-checks a program against a fresh scope. The program is not modified.
func Check(prog *ast.Program) *Result {
	c := new(checker)
	scope := NewScope()
	if prog != nil {
		c.checkStmts(scope, prog.Statements)
	}
	return &Result{
		Diagnostics: c.diagnostics,
		Symbols:     scope,
	}
}

func (c *checker) report(kind diags.Kind, pos diags.Pos, format string, args ...any) {
	c.diagnostics = append(c.diagnostics, diags.New(kind, pos, format, args...))
}

func (c *checker) checkStmts(scope Scope, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		c.checkStmt(scope, stmt)
	}
}

func (c *checker) checkStmt(scope Scope, stmt ast.Stmt) {
	switch stmt := stmt.(type) {

	case *ast.VarDecl:
		declared := TypeOf(stmt.Type)
		if stmt.Init != nil {
			t := c.infer(scope, stmt.Init)
			if t != Unknown && declared != Unknown && !declared.Accepts(t) {
				c.report(diags.TypeMismatch, stmt.Pos,
					"cannot assign '%s' to variable '%s' of type '%s'", t, stmt.Name, declared)
			}
		}
		// bound even when the initializer is ill-typed
		scope.Bind(stmt.Name, declared)

	case *ast.Assignment:
		target, ok := scope.Lookup(stmt.Name)
		if !ok {
			c.report(diags.UndeclaredVariable, stmt.Pos, "undeclared variable '%s'", stmt.Name)
		}
		t := c.infer(scope, stmt.Value)
		if ok && t != Unknown && target != Unknown && t != target {
			c.report(diags.TypeMismatch, stmt.Pos,
				"cannot assign '%s' to variable '%s' of type '%s'", t, stmt.Name, target)
		}

	case *ast.ExportStmt:
		if _, ok := scope.Lookup(stmt.Name); !ok {
			c.report(diags.UndeclaredVariable, stmt.Pos, "undeclared variable '%s'", stmt.Name)
		}

	case *ast.IfStmt:
		c.checkCondition(scope, stmt.Pos, stmt.Cond)
		c.checkStmts(scope.Snapshot(), stmt.Then)
		if stmt.Else != nil {
			c.checkStmts(scope.Snapshot(), stmt.Else)
		}

	case *ast.WhileStmt:
		c.checkCondition(scope, stmt.Pos, stmt.Cond)
		c.checkStmts(scope.Snapshot(), stmt.Body)

	case ast.Expr:
		c.infer(scope, stmt)

	case nil:

	default:
		panic(fmt.Errorf("unknown statement: %T", stmt))
	}
}

// checkCondition reports at the if or while keyword.
func (c *checker) checkCondition(scope Scope, pos diags.Pos, cond ast.Expr) {
	t := c.infer(scope, cond)
	if t != Unknown && t != Bool && t != Int {
		c.report(diags.InvalidConditionType, pos,
			"condition must be of type 'bool' or 'int', not '%s'", t)
	}
}

// infer returns the type of an expression. Unknown is returned for unbound
// names and ill-typed operations, after reporting them once.
func (c *checker) infer(scope Scope, expr ast.Expr) Type {
	switch expr := expr.(type) {

	case nil:
		return Unknown

	case *ast.Literal:
		switch expr.Kind {
		case ast.IntLiteral:
			return Int
		case ast.FloatLiteral:
			return Float
		case ast.StringLiteral:
			return String
		}
		return Unknown

	case *ast.Identifier:
		t, ok := scope.Lookup(expr.Name)
		if !ok {
			c.report(diags.UndeclaredVariable, expr.Pos, "undeclared variable '%s'", expr.Name)
			return Unknown
		}
		return t

	case *ast.BinaryOp:
		left := c.infer(scope, expr.Left)
		right := c.infer(scope, expr.Right)
		if left == Unknown || right == Unknown {
			return Unknown
		}
		if left != right || !left.IsNumeric() {
			c.report(diags.InvalidOperandTypes, expr.Pos,
				"invalid operation '%s' between '%s' and '%s'", ast.OperatorText(expr.Op), left, right)
			return Unknown
		}
		return left

	case *ast.UnaryOp:
		t := c.infer(scope, expr.Operand)
		if t == Unknown {
			return Unknown
		}
		switch {
		case expr.Op == syntax.TokenMinus && t.IsNumeric():
			return t
		case expr.Op == syntax.TokenNot && (t == Int || t == Bool):
			return Int
		}
		c.report(diags.InvalidOperandTypes, expr.Pos,
			"invalid operation '%s' on '%s'", ast.OperatorText(expr.Op), t)
		return Unknown

	case *ast.FunctionCall:
		// arguments are validated by the script generator
		return Video

	default:
		panic(fmt.Errorf("unknown expression: %T", expr))
	}
}
