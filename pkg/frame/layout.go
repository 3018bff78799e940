package frame

import "fmt"

// Layout names the byte arrangement of a packed 4:2:2 pixel pair. Every
// layout packs two pixels into 4 bytes: two luma samples sharing one U and
// one V sample.
type Layout int

const (
	// LayoutYUYV is Y0 U Y1 V
	LayoutYUYV Layout = iota
	// LayoutUYVY is U Y0 V Y1
	LayoutUYVY
	// LayoutYVYU is Y0 V Y1 U
	LayoutYVYU
	// LayoutVYUY is V Y0 U Y1
	LayoutVYUY
)

// pairOffsets are the byte positions of each sample inside a 4-byte group.
type pairOffsets struct {
	y0, y1, u, v int
}

var layoutOffsets = map[Layout]pairOffsets{
	LayoutYUYV: {y0: 0, y1: 2, u: 1, v: 3},
	LayoutUYVY: {y0: 1, y1: 3, u: 0, v: 2},
	LayoutYVYU: {y0: 0, y1: 2, u: 3, v: 1},
	LayoutVYUY: {y0: 1, y1: 3, u: 2, v: 0},
}

func (l Layout) String() string {
	switch l {
	case LayoutYUYV:
		return "YUYV"
	case LayoutUYVY:
		return "UYVY"
	case LayoutYVYU:
		return "YVYU"
	case LayoutVYUY:
		return "VYUY"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ChannelOrder names the byte order of an output pixel. Alpha is always the
// last byte; the orders differ only in where blue lands.
type ChannelOrder int

const (
	// OrderRGBA writes R, G, B, A (blue index 2). This is the layout of
	// image.RGBA and GL_RGBA textures.
	OrderRGBA ChannelOrder = iota
	// OrderBGRA writes B, G, R, A (blue index 0).
	OrderBGRA
)

type pixelOffsets struct {
	r, g, b, a int
}

func (o ChannelOrder) offsets() (pixelOffsets, bool) {
	var blue int
	switch o {
	case OrderRGBA:
		blue = 2
	case OrderBGRA:
		blue = 0
	default:
		return pixelOffsets{}, false
	}
	return pixelOffsets{r: 2 - blue, g: 1, b: blue, a: 3}, true
}

func (o ChannelOrder) String() string {
	switch o {
	case OrderRGBA:
		return "RGBA"
	case OrderBGRA:
		return "BGRA"
	}
	return fmt.Sprintf("ChannelOrder(%d)", int(o))
}

// LayoutFor returns the packed 4:2:2 layout of f.
func LayoutFor(f Format) (Layout, error) {
	switch f {
	case FormatYUY2:
		return LayoutYUYV, nil
	case FormatUYVY:
		return LayoutUYVY, nil
	case FormatYVYU:
		return LayoutYVYU, nil
	case FormatVYUY:
		return LayoutVYUY, nil
	}
	return 0, fmt.Errorf("%s is not a packed 4:2:2 format", f)
}

// OrderFor returns the output channel order of f.
func OrderFor(f Format) (ChannelOrder, error) {
	switch f {
	case FormatRGBA:
		return OrderRGBA, nil
	case FormatBGRA:
		return OrderBGRA, nil
	}
	return 0, fmt.Errorf("%s is not a packed RGBA format", f)
}

// Pack writes one pixel pair into the first 4 bytes of dst using layout l.
func (l Layout) Pack(dst []byte, y0, cb, y1, cr uint8) {
	off := layoutOffsets[l]
	dst = dst[:4:4]
	dst[off.y0] = y0
	dst[off.u] = cb
	dst[off.y1] = y1
	dst[off.v] = cr
}
