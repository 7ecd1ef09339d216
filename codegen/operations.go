package codegen

import (
	"fmt"
	"strings"

	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/sema"
	"github.com/reusee/clipc/syntax"
)

// call renders an editing operation. target is the assigned variable, empty
// when the call is not the right-hand side of an assignment.
func (e *emitter) call(call *ast.FunctionCall, target string) string {
	arg := func(i int) string {
		if i >= len(call.Args) {
			return "None"
		}
		return e.expr(call.Args[i])
	}

	switch call.Op {

	case syntax.TokenOpResize:
		source := e.clipArg(call, 0)
		return fmt.Sprintf("%s.resize(width=%s, height=%s)", source, arg(1), arg(2))

	case syntax.TokenOpConcat:
		first := e.clipArg(call, 0)
		second := e.clipArg(call, 1)
		return fmt.Sprintf("concatenate_videoclips([%s, %s])", first, second)
	}

	if target == "" {
		e.fail(call.Pos, "@%s needs a clip to apply to; assign its result to a video variable", call.Name())
		return "None"
	}

	var method string
	switch call.Op {
	case syntax.TokenOpFlip:
		method = ".fx(vfx.mirror_y)"
		if lit, ok := argAt(call, 0).(*ast.Literal); ok && strings.Contains(strings.ToLower(lit.Value), "horizontal") {
			method = ".fx(vfx.mirror_x)"
		}
	case syntax.TokenOpSpeed:
		method = fmt.Sprintf(".speedx(factor=%s)", arg(0))
	case syntax.TokenOpFadeIn:
		method = fmt.Sprintf(".fadein(duration=%s)", arg(0))
	case syntax.TokenOpFadeOut:
		method = fmt.Sprintf(".fadeout(duration=%s)", arg(0))
	case syntax.TokenOpMute:
		method = ".without_audio()"
	case syntax.TokenOpAddMusic:
		method = fmt.Sprintf(".set_audio(AudioFileClip(%s))", arg(0))
	case syntax.TokenOpTrim:
		method = fmt.Sprintf(".subclip(t_start=%s, t_end=%s)", arg(0), arg(1))
	default:
		e.fail(call.Pos, "unknown operation %v", call.Op)
		return "None"
	}
	return target + method
}

func argAt(call *ast.FunctionCall, i int) ast.Expr {
	if i >= len(call.Args) {
		return nil
	}
	return call.Args[i]
}

// clipArg renders an argument that must name a bound video variable.
func (e *emitter) clipArg(call *ast.FunctionCall, i int) string {
	id, ok := argAt(call, i).(*ast.Identifier)
	if !ok {
		e.fail(call.Pos, "argument %d of @%s must be a video variable", i+1, call.Name())
		return "None"
	}
	typ, bound := e.scope.Lookup(id.Name)
	switch {
	case !bound:
		e.fail(id.Pos, "argument '%s' of @%s is not declared", id.Name, call.Name())
	case typ != sema.Video:
		e.fail(id.Pos, "argument '%s' of @%s must be a video variable, not '%s'", id.Name, call.Name(), typ)
	}
	return id.Name
}
