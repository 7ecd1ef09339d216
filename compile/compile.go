package compile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/clipconfigs"
	"github.com/reusee/clipc/codegen"
	"github.com/reusee/clipc/diags"
	"github.com/reusee/clipc/logs"
	"github.com/reusee/clipc/sema"
	"github.com/reusee/clipc/syntax"
)

// Compile runs the phases over one source. Diagnostics are returned in the
// unit; the error is for failures to generate a script.
type Compile func(ctx context.Context, src Source, emit bool) (*Unit, error)

func (Module) Compile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	table *syntax.Table,
	recoverMode clipconfigs.Recover,
	maxDiagnostics clipconfigs.MaxDiagnostics,
	emitCheck clipconfigs.EmitCheck,
) Compile {

	phase := func(ctx context.Context, name string, start time.Time, args ...any) {
		args = append(args, "duration", time.Since(start))
		logger.DebugContext(ctx, name, args...)
	}

	return func(ctx context.Context, src Source, emit bool) (unit *Unit, err error) {
		ctx, _ = newSpan(ctx, "", "unit", src.Name)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		unit = &Unit{
			Name:   src.Name,
			Source: src.Text,
		}
		defer func() {
			unit.Diagnostics = diags.Truncate(unit.Diagnostics, int(maxDiagnostics))
		}()

		// lexical
		start := time.Now()
		tokens, lexDiags := syntax.Tokenize(src.Text)
		phase(ctx, "lex", start,
			"tokens", len(tokens),
			"diagnostics", len(lexDiags),
		)
		if len(lexDiags) > 0 {
			unit.Diagnostics = lexDiags
			return unit, nil
		}
		unit.Tokens = tokens

		// syntactic
		start = time.Now()
		var tree *syntax.Node
		var parseErrs []error
		if recoverMode {
			tree, parseErrs = syntax.ParseRecover(tokens, table)
		} else {
			var parseErr error
			tree, parseErr = syntax.Parse(tokens, table)
			if parseErr != nil {
				parseErrs = append(parseErrs, parseErr)
			}
		}
		phase(ctx, "parse", start,
			"recover", bool(recoverMode),
			"errors", len(parseErrs),
		)
		if len(parseErrs) > 0 {
			for _, e := range parseErrs {
				var syntaxErr *syntax.SyntaxError
				if !errors.As(e, &syntaxErr) {
					return unit, e
				}
				unit.Diagnostics = append(unit.Diagnostics, syntaxErr.Diagnostic())
			}
			return unit, nil
		}
		unit.Tree = tree

		// ast
		start = time.Now()
		unit.Program = ast.Build(tree)
		phase(ctx, "build", start,
			"statements", len(unit.Program.Statements),
		)

		// semantic
		start = time.Now()
		res := sema.Check(unit.Program)
		unit.Symbols = res.Symbols
		unit.Diagnostics = res.Diagnostics
		phase(ctx, "check", start,
			"symbols", len(res.Symbols),
			"diagnostics", len(res.Diagnostics),
		)

		if !emit || !unit.OK() {
			return unit, nil
		}

		// script
		start = time.Now()
		generator := codegen.Generator{
			SelfCheck: bool(emitCheck),
		}
		script, err := generator.Generate(unit.Program, unit.Symbols)
		if err != nil {
			return unit, fmt.Errorf("generate %s: %w", src.Name, err)
		}
		unit.Script = script
		phase(ctx, "generate", start,
			"bytes", len(script),
			"self_check", bool(emitCheck),
		)

		return unit, nil
	}
}
