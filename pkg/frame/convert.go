package frame

import "fmt"

// Converter turns packed 4:2:2 YUV rows into packed 32-bit RGB rows using
// the fixed-point ITU-R BT.601 transform. The source layout and output
// channel order are resolved into byte offsets once, in NewConverter.
//
// A Converter holds no mutable state, so one value may be shared by any
// number of goroutines as long as they write to disjoint destinations.
type Converter struct {
	layout Layout
	order  ChannelOrder
	in     pairOffsets
	out    pixelOffsets
}

// DefaultConverter converts YUYV to RGBA.
var DefaultConverter = mustNewConverter(LayoutYUYV, OrderRGBA)

// NewConverter creates a Converter reading src and writing dst.
func NewConverter(src Layout, dst ChannelOrder) (*Converter, error) {
	in, ok := layoutOffsets[src]
	if !ok {
		return nil, fmt.Errorf("unsupported source layout: %s", src)
	}
	out, ok := dst.offsets()
	if !ok {
		return nil, fmt.Errorf("unsupported channel order: %s", dst)
	}
	return &Converter{layout: src, order: dst, in: in, out: out}, nil
}

func mustNewConverter(src Layout, dst ChannelOrder) *Converter {
	c, err := NewConverter(src, dst)
	if err != nil {
		panic(err)
	}
	return c
}

// Layout returns the source layout c reads.
func (c *Converter) Layout() Layout { return c.layout }

// Order returns the channel order c writes.
func (c *Converter) Order() ChannelOrder { return c.order }

// Convert fills dst with the RGBA rendition of src.
//
// src holds height rows of stride bytes; only the first 2*width bytes of each
// row are read, so row padding never affects the output. dst must be exactly
// 4*width*height bytes and every byte of it is overwritten. The geometry is
// validated once, before anything is written; on error dst is untouched.
func (c *Converter) Convert(dst, src []byte, stride, width, height int) error {
	if err := validate(len(dst), len(src), stride, width, height); err != nil {
		return err
	}
	c.ConvertRows(dst, src, stride, width, 0, height)
	return nil
}

// ConvertUnchecked is Convert without validation, for callers that have
// already checked the geometry (e.g. once per stream rather than per frame).
//
// Calling it with buffers smaller than Convert requires, an odd width, or a
// stride below 2*width is a precondition violation with undefined results:
// it may panic partway through, leaving dst partially written.
func (c *Converter) ConvertUnchecked(dst, src []byte, stride, width, height int) {
	c.ConvertRows(dst, src, stride, width, 0, height)
}

// ConvertRows converts the rows [y0, y1) of src into the same rows of dst.
// Rows are independent, so disjoint ranges may be converted concurrently.
// It performs no validation; see ConvertUnchecked.
func (c *Converter) ConvertRows(dst, src []byte, stride, width, y0, y1 int) {
	in, out := c.in, c.out
	rowIn := 2 * width
	rowOut := 4 * width

	for j := y0; j < y1; j++ {
		s := src[j*stride : j*stride+rowIn]
		d := dst[j*rowOut : (j+1)*rowOut]

		for i, o := 0, 0; i < rowIn; i, o = i+4, o+8 {
			pair := s[i : i+4 : i+4]
			ruv, guv, buv := chromaTerms(pair[in.u], pair[in.v])

			px := d[o : o+4 : o+4]
			y := scaleLuma(pair[in.y0])
			px[out.r] = Saturate((y + ruv) >> bt601Shift)
			px[out.g] = Saturate((y + guv) >> bt601Shift)
			px[out.b] = Saturate((y + buv) >> bt601Shift)
			px[out.a] = 0xff

			px = d[o+4 : o+8 : o+8]
			y = scaleLuma(pair[in.y1])
			px[out.r] = Saturate((y + ruv) >> bt601Shift)
			px[out.g] = Saturate((y + guv) >> bt601Shift)
			px[out.b] = Saturate((y + buv) >> bt601Shift)
			px[out.a] = 0xff
		}
	}
}

// YUYVToRGBA converts a YUYV frame into RGBA with DefaultConverter.
func YUYVToRGBA(dst, src []byte, stride, width, height int) error {
	return DefaultConverter.Convert(dst, src, stride, width, height)
}
