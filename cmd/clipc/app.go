package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/clipc/clipconfigs"
	"github.com/reusee/clipc/compile"
	"github.com/reusee/clipc/debugs"
	"github.com/reusee/clipc/diags"
	"github.com/reusee/clipc/logs"
	"github.com/reusee/clipc/syntax"
)

// errDiagnostics is returned when a unit has diagnostics. They are already printed.
var errDiagnostics = errors.New("compilation failed")

type App struct {
	Compile    compile.Compile
	CompileAll compile.CompileAll
	Tap        debugs.Tap
	Table      *syntax.Table
	Color      clipconfigs.Color
	Logger     logs.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (Module) App(
	compile compile.Compile,
	compileAll compile.CompileAll,
	tap debugs.Tap,
	table *syntax.Table,
	color clipconfigs.Color,
	logger logs.Logger,
) *App {
	return &App{
		Compile:    compile,
		CompileAll: compileAll,
		Tap:        tap,
		Table:      table,
		Color:      color,
		Logger:     logger,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Task is one requested command.
type Task func(ctx context.Context, app *App) error

// read loads a source file. "-" is standard input.
func (a *App) read(path string) (compile.Source, error) {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(a.Stdin)
		path = "<stdin>"
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return compile.Source{}, fmt.Errorf("read %s: %w", path, err)
	}
	return compile.Source{
		Name: path,
		Text: string(content),
	}, nil
}

func (a *App) compile(ctx context.Context, path string, emit bool) (*compile.Unit, error) {
	src, err := a.read(path)
	if err != nil {
		return nil, err
	}
	unit, err := a.Compile(ctx, src, emit)
	if err != nil {
		return nil, err
	}
	return unit, a.report(unit)
}

// report prints the diagnostics of unit and returns errDiagnostics if there is any.
func (a *App) report(unit *compile.Unit) error {
	if unit.OK() {
		return nil
	}
	renderer := diags.NewRenderer(unit.Name, unit.Source, bool(a.Color))
	if err := renderer.RenderAll(a.Stderr, unit.Diagnostics); err != nil {
		return err
	}
	return errDiagnostics
}
