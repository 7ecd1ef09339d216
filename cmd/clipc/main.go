package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/clipc/cmds"
	"github.com/reusee/clipc/modes"
	"github.com/reusee/dscope"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	if len(tasks) == 0 {
		cmds.PrintUsage()
		os.Exit(-1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		app *App,
	) {
		err = run(context.Background(), app, tasks)
	})

	switch {
	case errors.Is(err, errDiagnostics):
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

// run executes tasks in order, stopping at the first failure.
func run(ctx context.Context, app *App, tasks []Task) error {
	for _, task := range tasks {
		if err := task(ctx, app); err != nil {
			return err
		}
	}
	return nil
}
