package video

import (
	"image"
)

// FrameBuffer keeps a private copy of an RGBA frame so that it can be used
// after the frame has been released to its producer.
type FrameBuffer struct {
	buffer []uint8
	tmp    *image.RGBA
}

// NewFrameBuffer creates a new FrameBuffer instance and initialize internal buffer
// with initialSize
func NewFrameBuffer(initialSize int) *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]uint8, initialSize),
	}
}

func (buff *FrameBuffer) store(src []uint8) {
	neededSize := len(src)

	if len(buff.buffer) < neededSize {
		if cap(buff.buffer) >= neededSize {
			buff.buffer = buff.buffer[:neededSize]
		} else {
			buff.buffer = make([]uint8, neededSize)
		}
	}

	copy(buff.buffer, src)
}

// Load loads the current owned image
func (buff *FrameBuffer) Load() *image.RGBA {
	return buff.tmp
}

// StoreCopy makes a copy of src and store its copy. StoreCopy will reuse as much memory as it can
// from the previous copies. For example, if StoreCopy is given an image that has the same resolution
// from the previous call, StoreCopy will not allocate extra memory and only copy the content
// from src to the previous buffer.
func (buff *FrameBuffer) StoreCopy(src *image.RGBA) {
	clone := buff.tmp
	if clone == nil {
		clone = &image.RGBA{}
	}
	*clone = *src

	buff.store(src.Pix)
	clone.Pix = buff.buffer[:len(src.Pix):len(src.Pix)]

	buff.tmp = clone
}

// Keep returns a transform that copies every frame into a FrameBuffer and
// releases the original right away. Use it when frames are held across
// reads, e.g. by an asynchronous texture upload.
func Keep() TransformFunc {
	return func(r Reader) Reader {
		buffer := NewFrameBuffer(0)
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
			buffer.StoreCopy(src)
			return buffer.Load(), noopRelease, nil
		})
	}
}
