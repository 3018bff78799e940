package yuyv

import (
	"image"
	"sync"

	"github.com/pion/yuyv/pkg/driver"
	"github.com/pion/yuyv/pkg/io/video"
	"github.com/pion/yuyv/pkg/prop"
)

// VideoSource is an opened driver producing RGBA frames.
type VideoSource struct {
	d     driver.Driver
	r     video.Reader
	media prop.Media

	closeOnce sync.Once
	closeErr  error
}

// ID returns the device ID of the underlying driver.
func (s *VideoSource) ID() string {
	return s.d.ID()
}

// Label returns the human readable name of the underlying driver.
func (s *VideoSource) Label() string {
	return s.d.Info().Label
}

// Properties returns the settings the source was opened with.
func (s *VideoSource) Properties() prop.Media {
	return s.media
}

// Read acquires the next frame. The caller must call release once it is
// done with img. After Close, Read returns io.EOF.
func (s *VideoSource) Read() (img image.Image, release func(), err error) {
	return s.r.Read()
}

// Close stops the driver. It is safe to call more than once.
func (s *VideoSource) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.d.Close()
	})
	return s.closeErr
}
