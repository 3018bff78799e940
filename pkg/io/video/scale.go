package video

import (
	"image"

	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

// Scale returns video scaling transform for RGBA frames, e.g. to fit a
// fixed size texture.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// Negative width or height value will keep the aspect ratio of incoming image.
func Scale(width, height int, scaler Scaler) TransformFunc {
	if width <= 0 && height <= 0 {
		panic("Both width and height are negative!")
	}
	if scaler == nil {
		scaler = ScalerNearestNeighbor
	}

	return func(r Reader) Reader {
		var imgScaled *image.RGBA

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

			rect := scaledRect(src.Bounds(), width, height)
			if imgScaled == nil || imgScaled.Rect != rect {
				imgScaled = image.NewRGBA(rect)
			}
			// Frames are opaque, draw.Src avoids blending with the previous frame.
			scaler.Scale(imgScaled, rect, src, src.Bounds(), draw.Src, nil)

			return imgScaled, noopRelease, nil
		})
	}
}

func scaledRect(src image.Rectangle, width, height int) image.Rectangle {
	switch {
	case height <= 0:
		height = src.Dy() * width / src.Dx()
	case width <= 0:
		width = src.Dx() * height / src.Dy()
	}
	return image.Rect(0, 0, width, height)
}
