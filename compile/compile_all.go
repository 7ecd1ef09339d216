package compile

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CompileAll compiles sources concurrently. Units are in input order.
type CompileAll func(ctx context.Context, sources []Source, emit bool) ([]*Unit, error)

func (Module) CompileAll(
	compile Compile,
) CompileAll {
	return func(ctx context.Context, sources []Source, emit bool) ([]*Unit, error) {
		units := make([]*Unit, len(sources))
		group, ctx := errgroup.WithContext(ctx)
		group.SetLimit(runtime.GOMAXPROCS(0))
		for i, src := range sources {
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				unit, err := compile(ctx, src, emit)
				units[i] = unit
				return err
			})
		}
		return units, group.Wait()
	}
}
