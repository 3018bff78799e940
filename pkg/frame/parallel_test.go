package frame

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

func TestConvertParallel(t *testing.T) {
	const (
		width  = 48
		height = 37
		stride = 2*width + 4
	)
	r := rand.New(rand.NewSource(6))
	src := randomFrame(r, height, stride)

	expected := make([]byte, width*height*4)
	if err := YUYVToRGBA(expected, src, stride, width, height); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{0, 1, 2, 3, 8, height, 100} {
		t.Run(fmt.Sprintf("Workers%d", workers), func(t *testing.T) {
			dst := make([]byte, width*height*4)
			err := DefaultConverter.ConvertParallel(context.Background(), dst, src, stride, width, height, workers)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(dst) != string(expected) {
				t.Error("Parallel output differs from sequential output")
			}
		})
	}
}

func TestConvertParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := make([]byte, 16)
	err := DefaultConverter.ConvertParallel(ctx, dst, make([]byte, 8), 4, 2, 2, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected %v, got %v", context.Canceled, err)
	}
}

func TestConvertParallelValidation(t *testing.T) {
	err := DefaultConverter.ConvertParallel(context.Background(), make([]byte, 16), make([]byte, 4), 4, 2, 2, 4)
	if !errors.Is(err, ErrBufferSize) {
		t.Errorf("expected %v, got %v", ErrBufferSize, err)
	}
}

func BenchmarkConvertParallel(b *testing.B) {
	workers := runtime.GOMAXPROCS(0)
	for _, sz := range imageSizes {
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			src := make([]byte, sz.width*sz.height*2)
			dst := make([]byte, sz.width*sz.height*4)
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				err := DefaultConverter.ConvertParallel(context.Background(), dst, src, sz.width*2, sz.width, sz.height, workers)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
