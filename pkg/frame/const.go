package frame

type Format string

const (
	// Packed YUV 4:2:2 Formats

	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUY2"
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = "UYVY"
	// FormatYVYU https://www.fourcc.org/pixel-format/yuv-yvyu/
	FormatYVYU Format = "YVYU"
	// FormatVYUY is UYVY with the chroma planes swapped
	FormatVYUY Format = "VYUY"

	// Packed RGB Formats

	// FormatRGBA is 8 bits per channel in R, G, B, A byte order
	FormatRGBA Format = "RGBA"
	// FormatBGRA is 8 bits per channel in B, G, R, A byte order
	FormatBGRA Format = "BGRA"
)

// YUV aliases

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2
