package accuracy

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SweepAll runs Sweep for every function with at most cfg.Workers sweeps in
// flight. Reports are returned in the order of fns. The first error or a
// cancelled ctx stops scheduling further sweeps.
func SweepAll(ctx context.Context, fns []Function, cfg Config) ([]Report, error) {
	reports := make([]Report, len(fns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))

	for i, fn := range fns {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Sweep(fn, cfg)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
