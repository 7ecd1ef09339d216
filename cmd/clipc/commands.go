package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/cmds"
	"github.com/reusee/clipc/compile"
	"github.com/reusee/clipc/vars"
)

var tasks []Task

// checkPaths are compiled together by one check task.
var checkPaths []string

func init() {
	cmds.Define("tokens", cmds.Func(func(path string) {
		tasks = append(tasks, tokensTask(path))
	}).Desc("print the tokens of FILE").Param("FILE"))

	cmds.Define("tree", cmds.Func(func(path string) {
		tasks = append(tasks, treeTask(path))
	}).Desc("print the parse tree of FILE").Param("FILE"))

	cmds.Define("ast", cmds.Func(func(path string) {
		tasks = append(tasks, astTask(path))
	}).Desc("print the syntax tree of FILE").Param("FILE"))

	cmds.Define("check", cmds.Func(func(path string) {
		if len(checkPaths) == 0 {
			tasks = append(tasks, checkTask)
		}
		checkPaths = append(checkPaths, path)
	}).Desc("check FILE, may be repeated").Param("FILE"))

	cmds.Define("emit", cmds.Func(func(path string, out *string) {
		tasks = append(tasks, emitTask(path, vars.DerefOrZero(out)))
	}).Desc("write the moviepy script of FILE to OUT, or standard output").Param("FILE", "[OUT]"))

	cmds.Define("inspect", cmds.Func(func(path string) {
		tasks = append(tasks, inspectTask(path))
	}).Desc("open a starlark REPL over the compilation of FILE").Param("FILE"))

	cmds.Define("grammar", cmds.Func(func() {
		tasks = append(tasks, grammarTask)
	}).Desc("print and validate the parse table"))
}

func tokensTask(path string) Task {
	return func(ctx context.Context, app *App) error {
		unit, err := app.compile(ctx, path, false)
		if unit == nil {
			return err
		}
		for _, token := range unit.Tokens {
			fmt.Fprintln(app.Stdout, token)
		}
		return err
	}
}

func treeTask(path string) Task {
	return func(ctx context.Context, app *App) error {
		unit, err := app.compile(ctx, path, false)
		if unit == nil {
			return err
		}
		if unit.Tree != nil {
			fmt.Fprint(app.Stdout, unit.Tree.Outline())
		}
		return err
	}
}

func astTask(path string) Task {
	return func(ctx context.Context, app *App) error {
		unit, err := app.compile(ctx, path, false)
		if unit == nil {
			return err
		}
		if unit.Program != nil {
			fmt.Fprintln(app.Stdout, ast.Print(unit.Program))
		}
		return err
	}
}

func checkTask(ctx context.Context, app *App) error {
	var sources []compile.Source
	for _, path := range checkPaths {
		src, err := app.read(path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	units, err := app.CompileAll(ctx, sources, false)
	if err != nil {
		return err
	}

	var errs []error
	for _, unit := range units {
		if err := app.report(unit); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(app.Stdout, "%s: ok\n", unit.Name)
		for _, name := range unit.Symbols.Names() {
			fmt.Fprintf(app.Stdout, "  %s: %s\n", name, unit.Symbols[name])
		}
	}
	if len(errs) > 0 {
		return errDiagnostics
	}
	return nil
}

func emitTask(path string, out string) Task {
	return func(ctx context.Context, app *App) error {
		unit, err := app.compile(ctx, path, true)
		if err != nil {
			return err
		}
		if out == "" {
			_, err := fmt.Fprint(app.Stdout, unit.Script)
			return err
		}
		if err := os.WriteFile(out, []byte(unit.Script), 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		app.Logger.InfoContext(ctx, "script written",
			"unit", unit.Name,
			"path", out,
		)
		return nil
	}
}

func inspectTask(path string) Task {
	return func(ctx context.Context, app *App) error {
		src, err := app.read(path)
		if err != nil {
			return err
		}
		unit, genErr := app.Compile(ctx, src, true)
		if unit == nil {
			return genErr
		}

		globals := map[string]any{
			"name":        unit.Name,
			"source":      unit.Source,
			"tokens":      unit.Tokens,
			"symbols":     unit.Symbols,
			"diagnostics": unit.Diagnostics,
			"script":      unit.Script,
			"tree":        "",
			"ast":         "",
			"error":       "",
		}
		if unit.Tree != nil {
			globals["tree"] = unit.Tree.Outline()
		}
		if unit.Program != nil {
			globals["ast"] = ast.Print(unit.Program)
		}
		if genErr != nil {
			globals["error"] = genErr.Error()
		}
		app.Tap(ctx, "inspect "+unit.Name, globals)
		return nil
	}
}

func grammarTask(ctx context.Context, app *App) error {
	fmt.Fprint(app.Stdout, app.Table.String())
	if err := app.Table.Validate(); err != nil {
		return errors.Join(errors.New("invalid parse table"), err)
	}
	return nil
}
