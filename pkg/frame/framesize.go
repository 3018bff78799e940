package frame

import "fmt"

// FrameSize returns the number of bytes a frame of the given geometry
// occupies in format f. stride is the packed row length in bytes; 0 means
// rows have no padding. stride is ignored for RGBA formats, which are never
// padded.
func FrameSize(f Format, width, height, stride int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	switch f {
	case FormatYUY2, FormatUYVY, FormatYVYU, FormatVYUY:
		if stride == 0 {
			stride = 2 * width
		}
		if stride < 2*width {
			return 0, fmt.Errorf("%w: %d < %d", ErrInvalidStride, stride, 2*width)
		}
		return stride * height, nil
	case FormatRGBA, FormatBGRA:
		return 4 * width * height, nil
	}
	return 0, fmt.Errorf("%s is not supported", f)
}
