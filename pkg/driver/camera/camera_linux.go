package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/blackjack/webcam"
	"github.com/pion/yuyv/internal/logging"
	"github.com/pion/yuyv/pkg/driver"
	"github.com/pion/yuyv/pkg/driver/availability"
	"github.com/pion/yuyv/pkg/frame"
	"github.com/pion/yuyv/pkg/io/video"
	"github.com/pion/yuyv/pkg/prop"
)

const (
	maxEmptyFrameCount = 5
	// readTimeout is in seconds
	readTimeout        = 5
	defaultVideoDevice = "video0"
)

var (
	errReadTimeout = errors.New("read timeout")
	errEmptyFrame  = errors.New("empty frame")
)

var logger = logging.NewLogger("yuyv/driver/camera")

// fourcc mirrors the v4l2_fourcc macro from linux/videodev2.h.
func fourcc(a, b, c, d byte) webcam.PixelFormat {
	return webcam.PixelFormat(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

var supportedFormats = map[webcam.PixelFormat]frame.Format{
	fourcc('Y', 'U', 'Y', 'V'): frame.FormatYUYV,
	fourcc('U', 'Y', 'V', 'Y'): frame.FormatUYVY,
	fourcc('Y', 'V', 'Y', 'U'): frame.FormatYVYU,
	fourcc('V', 'Y', 'U', 'Y'): frame.FormatVYUY,
}

// Camera implementation using v4l2
// Reference: https://linuxtv.org/downloads/v4l-dvb-apis/uapi/v4l/videodev.html#videodev
type camera struct {
	path            string
	cam             *webcam.Webcam
	formats         map[webcam.PixelFormat]frame.Format
	reversedFormats map[frame.Format]webcam.PixelFormat
	mutex           sync.Mutex
	cancel          func()
}

func init() {
	Initialize()
}

// Initialize finds and registers camera devices. This is part of an experimental API.
func Initialize() {
	discovered := make(map[string]struct{})
	discover(driver.GetManager(), discovered, "/dev/v4l/by-path/*")
	discover(driver.GetManager(), discovered, "/dev/video*")
}

func discover(m *driver.Manager, discovered map[string]struct{}, pattern string) {
	devices, err := filepath.Glob(pattern)
	if err != nil {
		// No v4l device.
		return
	}
	for _, device := range devices {
		label := filepath.Base(device)
		reallink, err := os.Readlink(device)
		if err != nil {
			reallink = label
		} else {
			reallink = filepath.Base(reallink)
		}
		if _, ok := discovered[reallink]; ok {
			continue
		}

		discovered[reallink] = struct{}{}
		cam := newCamera(device)
		priority := driver.PriorityNormal
		if reallink == defaultVideoDevice {
			priority = driver.PriorityHigh
		}
		err = m.Register(cam, driver.Info{
			Label:      label + LabelSeparator + reallink,
			DeviceType: driver.Camera,
			Priority:   priority,
		})
		if err != nil {
			logger.Warnf("failed to register %s: %v", device, err)
		}
	}
}

func newCamera(path string) *camera {
	reversedFormats := make(map[frame.Format]webcam.PixelFormat)
	for k, v := range supportedFormats {
		reversedFormats[v] = k
	}

	c := &camera{
		path:            path,
		formats:         supportedFormats,
		reversedFormats: reversedFormats,
	}
	return c
}

func (c *camera) Open() error {
	cam, err := webcam.Open(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", c.path, availability.ErrNoDevice)
		}
		return err
	}

	c.cam = cam
	return nil
}

func (c *camera) Close() error {
	if c.cam == nil {
		return nil
	}

	if c.cancel != nil {
		// Let the reader knows that the caller has closed the camera
		c.cancel()
		// Wait until the reader is done with the mmap buffer
		c.mutex.Lock()
		defer c.mutex.Unlock()

		c.cam.StopStreaming()
		c.cancel = nil
	}
	err := c.cam.Close()
	c.cam = nil
	return err
}

func (c *camera) VideoRecord(p prop.Media) (video.Reader, error) {
	pf, ok := c.reversedFormats[p.FrameFormat]
	if !ok {
		return nil, fmt.Errorf("%s is not supported by %s", p.FrameFormat, c.path)
	}

	decoder, err := frame.NewDecoder(p.FrameFormat)
	if err != nil {
		return nil, err
	}

	_, w, h, err := c.cam.SetImageFormat(pf, uint32(p.Width), uint32(p.Height))
	if err != nil {
		return nil, err
	}
	if int(w) != p.Width || int(h) != p.Height {
		logger.Warnf("%s: requested %dx%d, device chose %dx%d", c.path, p.Width, p.Height, w, h)
		p.Width, p.Height = int(w), int(h)
	}

	if err := c.cam.StartStreaming(); err != nil {
		return nil, err
	}
	logger.Infof("%s: streaming %s %dx%d", c.path, p.FrameFormat, p.Width, p.Height)

	cam := c.cam

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	r := video.ReaderFunc(func() (image.Image, func(), error) {
		// Lock to avoid accessing the buffer after StopStreaming()
		c.mutex.Lock()
		defer c.mutex.Unlock()

		// Wait until a frame is ready
		for i := 0; i < maxEmptyFrameCount; i++ {
			if ctx.Err() != nil {
				// Return EOF if the camera is already closed.
				return nil, func() {}, io.EOF
			}

			err := cam.WaitForFrame(readTimeout)
			switch err.(type) {
			case nil:
			case *webcam.Timeout:
				return nil, func() {}, errReadTimeout
			default:
				// Camera has been stopped.
				return nil, func() {}, err
			}

			b, err := cam.ReadFrame()
			if err != nil {
				// Camera has been stopped.
				return nil, func() {}, err
			}

			// Frame is empty.
			// Retry reading and return errEmptyFrame if it exceeds maxEmptyFrameCount.
			if len(b) == 0 {
				logger.Debugf("%s: empty frame", c.path)
				continue
			}

			// b points into the mmap buffer. The decoder writes its output
			// to Go memory, so nothing outlives the lock.
			return decoder.Decode(b, p.Width, p.Height)
		}
		return nil, func() {}, errEmptyFrame
	})

	return r, nil
}

func (c *camera) Properties() []prop.Media {
	properties := make([]prop.Media, 0)
	for format := range c.cam.GetSupportedFormats() {
		frameFormat, ok := c.formats[format]
		if !ok {
			continue
		}
		for _, frameSize := range c.cam.GetSupportedFrameSizes(format) {
			properties = append(properties, prop.Media{
				Video: prop.Video{
					Width:       int(frameSize.MaxWidth),
					Height:      int(frameSize.MaxHeight),
					FrameFormat: frameFormat,
				},
			})
		}
	}
	return properties
}
