package frame

import (
	"fmt"
	"image"
	"sync"
)

// decode422 builds a decoder around c. Frames may carry row padding. With
// stride 0 the stride is taken from the frame length, which is how V4L2 hands
// out buffers (bytesperline * height).
func decode422(c *Converter, stride int) decoderFunc {
	var pool rgbaPool

	return func(frame []byte, width, height int) (image.Image, func(), error) {
		if width <= 0 || height <= 0 {
			return nil, func() {}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
		}

		rowStride := stride
		if rowStride == 0 {
			if len(frame)%height != 0 {
				return nil, func() {}, fmt.Errorf("frame length (%d) not a multiple of height (%d)", len(frame), height)
			}
			rowStride = len(frame) / height
		}
		if len(frame) < rowStride*height || rowStride < 2*width {
			return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), max(rowStride, 2*width)*height)
		}

		img := pool.get(width, height)
		if err := c.Convert(img.Pix, frame, rowStride, width, height); err != nil {
			pool.put(img)
			return nil, func() {}, err
		}

		var once sync.Once
		return img, func() { once.Do(func() { pool.put(img) }) }, nil
	}
}

// rgbaPool recycles decoded images of the most recent geometry.
type rgbaPool struct {
	pool sync.Pool
}

func (p *rgbaPool) get(width, height int) *image.RGBA {
	r := image.Rect(0, 0, width, height)
	for {
		v := p.pool.Get()
		if v == nil {
			return image.NewRGBA(r)
		}
		// Images of another geometry are dropped for the GC to reclaim.
		if img := v.(*image.RGBA); img.Rect == r {
			return img
		}
	}
}

func (p *rgbaPool) put(img *image.RGBA) {
	p.pool.Put(img)
}
