package frame

import (
	"fmt"
	"image"
	"reflect"
	"testing"
)

func TestDecodeYUY2(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		// Y    Cb    Y    Cr
		0x80, 0x80, 0x10, 0x80,
		0xeb, 0x80, 0x51, 0x5a,
	}
	expected := &image.RGBA{
		Pix: []byte{
			130, 130, 130, 255, 0, 0, 0, 255,
			194, 255, 255, 255, 15, 107, 76, 255,
		},
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}

	decoder, err := NewDecoder(FormatYUYV)
	if err != nil {
		t.Fatal(err)
	}
	img, release, err := decoder.Decode(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestDecodeUYVY(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	yuyv := []byte{
		0x80, 0x80, 0x10, 0x80,
		0xeb, 0x80, 0x51, 0x5a,
	}
	input := []byte{
		//Cb    Y    Cr    Y
		0x80, 0x80, 0x80, 0x10,
		0x80, 0xeb, 0x5a, 0x51,
	}

	decYUYV, err := NewDecoder(FormatYUYV)
	if err != nil {
		t.Fatal(err)
	}
	decUYVY, err := NewDecoder(FormatUYVY)
	if err != nil {
		t.Fatal(err)
	}

	expected, release1, err := decYUYV.Decode(yuyv, width, height)
	if err != nil {
		t.Fatal(err)
	}
	defer release1()
	img, release2, err := decUYVY.Decode(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	defer release2()

	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestDecodePaddedRows(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	// 8 bytes per row as reported by bytesperline.
	input := []byte{
		0x80, 0x80, 0x80, 0x80, 0xff, 0xff, 0xff, 0xff,
		0x10, 0x80, 0x10, 0x80, 0xff, 0xff, 0xff, 0xff,
	}
	decoder, err := NewDecoder(FormatYUYV)
	if err != nil {
		t.Fatal(err)
	}
	img, release, err := decoder.Decode(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	rgba := img.(*image.RGBA)
	expected := []byte{
		130, 130, 130, 255, 130, 130, 130, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
	}
	if !reflect.DeepEqual(expected, rgba.Pix) {
		t.Errorf("Wrong decode result,\nexpected:\n%v\ngot:\n%v", expected, rgba.Pix)
	}
}

func TestDecodeErrors(t *testing.T) {
	decoder, err := NewDecoder(FormatYUYV)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := decoder.Decode([]byte{0x00}, 2, 3); err == nil {
		t.Error("expected to get a frame length mismatch")
	}
	if _, _, err := decoder.Decode(make([]byte, 12), 0, 3); err == nil {
		t.Error("expected to get an invalid dimensions error")
	}
	if _, _, err := decoder.Decode(make([]byte, 12), 3, 2); err == nil {
		t.Error("expected to get an odd width error")
	}
}

func TestNewDecoderUnsupported(t *testing.T) {
	for _, f := range []Format{FormatRGBA, FormatBGRA, Format("MJPEG")} {
		if _, err := NewDecoder(f); err == nil {
			t.Errorf("expected %s to be unsupported", f)
		}
	}
}

func TestDecodeReleaseReuse(t *testing.T) {
	decoder, err := NewDecoder(FormatYUYV)
	if err != nil {
		t.Fatal(err)
	}

	input := make([]byte, 4*2*2)
	img, release, err := decoder.Decode(input, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	release()
	// Releasing twice must not hand the same image out twice.
	release()

	a, releaseA, err := decoder.Decode(input, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, releaseB, err := decoder.Decode(input, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer releaseA()
	defer releaseB()

	if a == b {
		t.Error("two live frames share the same image")
	}
	_ = img
}

func BenchmarkDecodeYUY2(b *testing.B) {
	for _, sz := range imageSizes {
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			decoder, err := NewDecoder(FormatYUYV)
			if err != nil {
				b.Fatal(err)
			}
			input := make([]byte, sz.width*sz.height*2)
			for i := 0; i < b.N; i++ {
				_, release, err := decoder.Decode(input, sz.width, sz.height)
				if err != nil {
					b.Fatal(err)
				}
				release()
			}
		})
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	// Two rows of 4 bytes followed by 2 bytes the driver rounded up to.
	input := []byte{
		100, 128, 100, 128,
		200, 128, 200, 128,
		0xde, 0xad,
	}

	t.Run("InferredStride", func(t *testing.T) {
		decoder, err := NewDecoder(FormatYUYV)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := decoder.Decode(input, width, height); err == nil {
			t.Fatal("expected an error for a frame length that is not a multiple of height")
		}
	})

	t.Run("KnownStride", func(t *testing.T) {
		decoder, err := NewStrideDecoder(FormatYUYV, 4)
		if err != nil {
			t.Fatal(err)
		}
		img, release, err := decoder.Decode(input, width, height)
		if err != nil {
			t.Fatal(err)
		}
		defer release()

		expected := []byte{
			98, 98, 98, 255, 98, 98, 98, 255,
			214, 214, 214, 255, 214, 214, 214, 255,
		}
		if pix := img.(*image.RGBA).Pix; !reflect.DeepEqual(expected, pix) {
			t.Errorf("expected %v, got %v", expected, pix)
		}
	})
}

func TestDecodeStrideTooShort(t *testing.T) {
	decoder, err := NewStrideDecoder(FormatYUYV, 8)
	if err != nil {
		t.Fatal(err)
	}
	// 2 rows of stride 8 need 16 bytes.
	if _, _, err := decoder.Decode(make([]byte, 12), 2, 2); err == nil {
		t.Fatal("expected an error for a frame shorter than stride*height")
	}

	if _, err := NewStrideDecoder(FormatYUYV, -1); err == nil {
		t.Fatal("expected an error for a negative stride")
	}
}
