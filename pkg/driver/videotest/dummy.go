// Package videotest provides dummy video driver for testing.
// It produces 75% colour bars in packed 4:2:2 YUV with padded rows and
// feeds them through the same decoder a camera uses.
package videotest

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/pion/yuyv/pkg/driver"
	"github.com/pion/yuyv/pkg/frame"
	"github.com/pion/yuyv/pkg/io/video"
	"github.com/pion/yuyv/pkg/prop"
)

// rowPadding is the number of bytes after each packed row, the way some
// sensors align bytesperline.
const rowPadding = 32

func init() {
	driver.GetManager().Register(
		newVideoTest(),
		driver.Info{Label: "VideoTest", DeviceType: driver.Camera, Priority: driver.PriorityLow},
	)
}

type dummy struct {
	closed <-chan struct{}
	cancel func()
	tick   *time.Ticker
}

func newVideoTest() *dummy {
	return &dummy{}
}

func (d *dummy) Open() error {
	ctx, cancel := context.WithCancel(context.Background())
	d.closed = ctx.Done()
	d.cancel = cancel
	return nil
}

func (d *dummy) Close() error {
	if d.cancel != nil {
		d.cancel()
	}
	if d.tick != nil {
		d.tick.Stop()
	}
	return nil
}

// colorBars are 100% colour bars in studio range YCbCr: white, yellow,
// cyan, green, magenta, red, blue.
var colorBars = [][3]byte{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// Pattern renders the test pattern of width x height pixels in layout l with
// the given row stride. The top 3/4 are colour bars with luma at 75%, the bottom
// quarter a gray gradation followed by a black area for noise.
func Pattern(l frame.Layout, width, height, stride int) []byte {
	buf := make([]byte, stride*height)
	hColorBarEnd := height * 3 / 4
	wGradationEnd := width * 5 / 7

	for y := 0; y < height; y++ {
		row := buf[y*stride : y*stride+2*width]
		for x := 0; x < width; x += 2 {
			var y0, y1, cb, cr byte
			if y < hColorBarEnd {
				c := colorBars[x*7/width]
				y0 = uint8(uint16(c[0]) * 75 / 100)
				y1 = y0
				cb, cr = c[1], c[2]
			} else {
				cb, cr = 128, 128
				if x < wGradationEnd {
					y0 = uint8(x * 255 / wGradationEnd)
					y1 = uint8((x + 1) * 255 / wGradationEnd)
				}
			}
			l.Pack(row[2*x:], y0, cb, y1, cr)
		}
	}
	return buf
}

func (d *dummy) VideoRecord(p prop.Media) (video.Reader, error) {
	if p.FrameRate == 0 {
		p.FrameRate = 30
	}
	if p.Width == 0 && p.Height == 0 {
		p.Width, p.Height = 640, 480
	}
	if p.FrameFormat == "" {
		p.FrameFormat = frame.FormatYUYV
	}

	layout, err := frame.LayoutFor(p.FrameFormat)
	if err != nil {
		return nil, err
	}
	if p.Width <= 0 || p.Height <= 0 || p.Width%2 != 0 {
		return nil, fmt.Errorf("invalid size %dx%d", p.Width, p.Height)
	}

	stride := 2*p.Width + rowPadding
	decoder, err := frame.NewStrideDecoder(p.FrameFormat, stride)
	if err != nil {
		return nil, err
	}
	base := Pattern(layout, p.Width, p.Height, stride)
	buf := make([]byte, len(base))
	hColorBarEnd := p.Height * 3 / 4
	wGradationEnd := p.Width * 5 / 7
	random := rand.New(rand.NewSource(0))

	tick := time.NewTicker(time.Duration(float32(time.Second) / p.FrameRate))
	d.tick = tick
	closed := d.closed

	r := video.ReaderFunc(func() (image.Image, func(), error) {
		select {
		case <-closed:
			return nil, func() {}, io.EOF
		default:
		}

		select {
		case <-closed:
			return nil, func() {}, io.EOF
		case <-tick.C:
		}

		copy(buf, base)
		for y := hColorBarEnd; y < p.Height; y++ {
			row := buf[y*stride : (y+1)*stride]
			for x := wGradationEnd &^ 1; x < p.Width; x += 2 {
				// Noise
				layout.Pack(row[2*x:], uint8(random.Int31n(2)*255), 128, uint8(random.Int31n(2)*255), 128)
			}
		}
		for y := 0; y < p.Height; y++ {
			// Padding must never show up in the picture.
			random.Read(buf[y*stride+2*p.Width : (y+1)*stride])
		}

		return decoder.Decode(buf, p.Width, p.Height)
	})

	return r, nil
}

func (d dummy) Properties() []prop.Media {
	return []prop.Media{
		{
			Video: prop.Video{
				Width:       640,
				Height:      480,
				FrameRate:   30,
				FrameFormat: frame.FormatYUYV,
			},
		},
		{
			Video: prop.Video{
				Width:       640,
				Height:      480,
				FrameRate:   30,
				FrameFormat: frame.FormatUYVY,
			},
		},
	}
}
