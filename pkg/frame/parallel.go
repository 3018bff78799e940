package frame

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ConvertParallel is Convert split into horizontal bands that are converted
// by up to workers goroutines. The output is identical to Convert.
//
// Bands that haven't started when ctx is cancelled are skipped and ctx's
// error is returned; in that case dst is only partially written.
func (c *Converter) ConvertParallel(ctx context.Context, dst, src []byte, stride, width, height, workers int) error {
	if err := validate(len(dst), len(src), stride, width, height); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if workers > height {
		workers = height
	}
	if workers <= 1 {
		c.ConvertRows(dst, src, stride, width, 0, height)
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	band := (height + workers - 1) / workers
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.ConvertRows(dst, src, stride, width, y0, y1)
			return nil
		})
	}
	return g.Wait()
}
