package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive,
	// or width is odd. Packed 4:2:2 needs whole pixel pairs.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")
	// ErrInvalidStride is returned when a source row can't hold width pixels.
	ErrInvalidStride = errors.New("stride shorter than a packed row")
	// ErrBufferSize is wrapped by every BufferSizeError.
	ErrBufferSize = errors.New("buffer size mismatch")
)

// BufferSizeError tells the caller that a buffer doesn't meet the size
// required by the requested geometry.
type BufferSizeError struct {
	// Buffer is either "source" or "destination"
	Buffer   string
	Required int
	Actual   int
}

func (e *BufferSizeError) Error() string {
	if e.Actual < e.Required {
		return fmt.Sprintf("%s buffer length (%d) less than expected (%d)", e.Buffer, e.Actual, e.Required)
	}
	return fmt.Sprintf("%s buffer length (%d) greater than expected (%d)", e.Buffer, e.Actual, e.Required)
}

func (e *BufferSizeError) Unwrap() error {
	return ErrBufferSize
}

// validate checks a conversion request once, before any byte is written.
func validate(dstLen, srcLen, stride, width, height int) error {
	if width <= 0 || height <= 0 || width%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if stride < 2*width {
		return fmt.Errorf("%w: %d < %d", ErrInvalidStride, stride, 2*width)
	}
	if need := stride * height; srcLen < need {
		return &BufferSizeError{Buffer: "source", Required: need, Actual: srcLen}
	}
	if need := 4 * width * height; dstLen != need {
		return &BufferSizeError{Buffer: "destination", Required: need, Actual: dstLen}
	}
	return nil
}
