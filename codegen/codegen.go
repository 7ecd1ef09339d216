// Package codegen emits moviepy scripts from checked programs.
package codegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/diags"
	"github.com/reusee/clipc/sema"
	"github.com/reusee/clipc/syntax"
	starlarksyntax "go.starlark.net/syntax"
)

const prelude = `from moviepy.editor import *
from moviepy.video.fx.all import *
from moviepy.audio.fx.all import *
`

const indentUnit = "    "

type Error struct {
	Pos     diags.Pos
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("generate error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

type Generator struct {
	// parse the emitted body before returning it
	SelfCheck bool
}

// Generate emits the script of prog with the self-check enabled.
func Generate(prog *ast.Program, symbols sema.Scope) (string, error) {
	return Generator{SelfCheck: true}.Generate(prog, symbols)
}

func (g Generator) Generate(prog *ast.Program, symbols sema.Scope) (string, error) {
	e := &emitter{
		scope: symbols.Snapshot(),
	}
	if prog != nil {
		e.stmts(prog.Statements)
	}
	if len(e.errs) > 0 {
		return "", errors.Join(e.errs...)
	}

	body := strings.Join(e.lines, "\n") + "\n"
	if g.SelfCheck {
		if err := CheckBody(body); err != nil {
			return "", err
		}
	}
	return prelude + "\n" + body, nil
}

var fileOptions = &starlarksyntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// CheckBody parses the statements of a generated script, without the import prelude.
func CheckBody(body string) error {
	if _, err := fileOptions.Parse("generated.py", body, 0); err != nil {
		return fmt.Errorf("generated script does not parse: %w", err)
	}
	return nil
}

type emitter struct {
	scope  sema.Scope
	lines  []string
	indent int
	errs   []error
}

func (e *emitter) fail(pos diags.Pos, format string, args ...any) {
	e.errs = append(e.errs, &Error{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

func (e *emitter) checkName(pos diags.Pos, name string) {
	if reservedNames[name] {
		e.fail(pos, "variable name '%s' is reserved in the generated script", name)
	}
}

func (e *emitter) line(format string, args ...any) {
	e.lines = append(e.lines, strings.Repeat(indentUnit, e.indent)+fmt.Sprintf(format, args...))
}

func (e *emitter) block(stmts []ast.Stmt) {
	e.indent++
	saved := e.scope
	e.scope = saved.Snapshot()
	if len(stmts) == 0 {
		e.line("pass")
	}
	e.stmts(stmts)
	e.scope = saved
	e.indent--
}

func (e *emitter) stmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		e.stmt(stmt)
	}
}

func (e *emitter) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {

	case *ast.VarDecl:
		e.checkName(stmt.Pos, stmt.Name)
		typ := sema.TypeOf(stmt.Type)
		var value string
		switch init := stmt.Init.(type) {
		case nil:
			value = "None"
		case *ast.FunctionCall:
			value = e.call(init, "")
		default:
			value = e.expr(init)
			switch typ {
			case sema.Video:
				value = "VideoFileClip(" + value + ")"
			case sema.Audio:
				value = "AudioFileClip(" + value + ")"
			}
		}
		e.line("%s = %s", stmt.Name, value)
		e.scope.Bind(stmt.Name, typ)

	case *ast.Assignment:
		if _, declared := e.scope.Lookup(stmt.Name); !declared {
			e.checkName(stmt.Pos, stmt.Name)
		}
		if call, ok := stmt.Value.(*ast.FunctionCall); ok {
			e.line("%s = %s", stmt.Name, e.call(call, stmt.Name))
		} else {
			e.line("%s = %s", stmt.Name, e.expr(stmt.Value))
		}

	case *ast.ExportStmt:
		method := "write_videofile"
		if typ, _ := e.scope.Lookup(stmt.Name); typ == sema.Audio {
			method = "write_audiofile"
		}
		e.line("%s.%s(%s)", stmt.Name, method, strconv.Quote(stmt.Output))

	case *ast.IfStmt:
		e.line("if %s:", e.expr(stmt.Cond))
		e.block(stmt.Then)
		if len(stmt.Else) > 0 {
			e.line("else:")
			e.block(stmt.Else)
		}

	case *ast.WhileStmt:
		e.line("while %s:", e.expr(stmt.Cond))
		e.block(stmt.Body)

	case ast.Expr:
		e.line("%s", e.expr(stmt))

	default:
		panic(fmt.Errorf("unknown statement: %T", stmt))
	}
}

func (e *emitter) expr(expr ast.Expr) string {
	switch expr := expr.(type) {

	case nil:
		return "None"

	case *ast.Literal:
		if expr.Kind == ast.StringLiteral {
			return strconv.Quote(expr.Value)
		}
		return number(expr.Value)

	case *ast.Identifier:
		return expr.Name

	case *ast.BinaryOp:
		return fmt.Sprintf("(%s %s %s)", e.expr(expr.Left), ast.OperatorText(expr.Op), e.expr(expr.Right))

	case *ast.UnaryOp:
		if expr.Op == syntax.TokenNot {
			return fmt.Sprintf("(not %s)", e.expr(expr.Operand))
		}
		return fmt.Sprintf("(-%s)", e.expr(expr.Operand))

	case *ast.FunctionCall:
		return e.call(expr, "")

	default:
		panic(fmt.Errorf("unknown expression: %T", expr))
	}
}
