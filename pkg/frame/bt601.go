package frame

// ITU-R BT.601 studio range YUV to RGB coefficients, scaled by 1<<bt601Shift.
const (
	bt601CY    = 1220542
	bt601CUB   = 2116026
	bt601CUG   = -409993
	bt601CVG   = -852492
	bt601CVR   = 1673527
	bt601Shift = 20

	// bt601Bias rounds the final shift to nearest.
	bt601Bias = 1 << (bt601Shift - 1)
)

// Saturate clamps v to [0, 255].
func Saturate(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}

// scaleLuma lifts the studio black level to zero. Values above white are
// left alone and saturate at the output.
func scaleLuma(y uint8) int {
	return max(0, int(y)-16) * bt601CY
}

// chromaTerms returns the rounding-biased chroma contribution of each
// output channel for one pixel pair.
func chromaTerms(cb, cr uint8) (r, g, b int) {
	u := int(cb) - 128
	v := int(cr) - 128
	r = bt601Bias + bt601CVR*v
	g = bt601Bias + bt601CVG*v + bt601CUG*u
	b = bt601Bias + bt601CUB*u
	return
}
