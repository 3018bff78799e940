package video

import (
	"image"
)

// Mirror returns a transform flipping RGBA frames horizontally, the way a
// camera preview is usually shown. The output image is reused between reads.
func Mirror() TransformFunc {
	return func(r Reader) Reader {
		var dst image.RGBA

		return ReaderFunc(func() (image.Image, func(), error) {
			img, release, err := r.Read()
			if err != nil {
				return nil, noopRelease, err
			}
			defer release()

			src, ok := img.(*image.RGBA)
			if !ok {
				return nil, noopRelease, unsupported(img)
			}

			mirrorRGBA(&dst, src)
			return &dst, noopRelease, nil
		})
	}
}

func mirrorRGBA(dst, src *image.RGBA) {
	bounds := src.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()

	if len(dst.Pix) < 4*dx*dy {
		dst.Pix = make([]uint8, 4*dx*dy)
	}
	dst.Pix = dst.Pix[:4*dx*dy]
	dst.Stride = 4 * dx
	dst.Rect = image.Rect(0, 0, dx, dy)

	for y := 0; y < dy; y++ {
		in := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		out := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
		for x := 0; x < dx; x++ {
			o := 4 * (dx - 1 - x)
			copy(out[o:o+4], in[4*x:4*x+4])
		}
	}
}
