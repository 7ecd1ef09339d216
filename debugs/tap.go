package debugs

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/reusee/clipc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over globals. Go values are converted to starlark
// values; functions become builtins.
type Tap func(ctx context.Context, what string, globals map[string]any)

// TapInput is where the REPL reads from. Nil means the terminal.
type TapInput io.Reader

func (Module) TapInput() TapInput {
	return nil
}

var replOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func (Module) Tap(
	logger logs.Logger,
	input TapInput,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict, len(globals))
		for _, name := range names {
			mappings[name] = toStarlarkValue(globals[name])
		}

		thread := &starlark.Thread{
			Name: what,
		}

		if input != nil {
			// non-interactive: run the whole input as one file
			src, err := io.ReadAll(input)
			if err != nil {
				logger.ErrorContext(ctx, "read tap input", "error", err)
				return
			}
			thread.Print = func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg)
			}
			if _, err := starlark.ExecFileOptions(replOptions, thread, what, src, mappings); err != nil {
				logger.ErrorContext(ctx, "tap", "error", err)
			}
			return
		}

		repl.REPLOptions(replOptions, thread, mappings)
	}
}
