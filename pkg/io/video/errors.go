package video

import (
	"errors"
	"fmt"
	"image"
)

var errUnsupportedImageType = errors.New("unsupported image type")

func unsupported(img image.Image) error {
	return fmt.Errorf("%w: %T", errUnsupportedImageType, img)
}
