package frame

import (
	"fmt"
)

// NewDecoder creates a Decoder converting frames of format f into
// *image.RGBA. The row stride is taken from the frame length, see
// NewStrideDecoder when the stride is known.
func NewDecoder(f Format) (Decoder, error) {
	return NewStrideDecoder(f, 0)
}

// NewStrideDecoder is NewDecoder for frames whose rows are stride bytes
// apart. Bytes after the last row are ignored. A stride of 0 means the
// stride is len(frame)/height, and frames whose length is not a multiple
// of height are rejected.
func NewStrideDecoder(f Format, stride int) (Decoder, error) {
	layout, err := LayoutFor(f)
	if err != nil {
		return nil, fmt.Errorf("%s is not supported", f)
	}
	if stride < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}

	c, err := NewConverter(layout, OrderRGBA)
	if err != nil {
		return nil, err
	}
	return decode422(c, stride), nil
}
