package driver

import (
	"github.com/pion/yuyv/pkg/io/video"
	"github.com/pion/yuyv/pkg/prop"
)

// OpenCloser is an interface with Open and Close methods
type OpenCloser interface {
	Open() error
	Close() error
}

// Infoer is an interface with Info method
type Infoer interface {
	Info() Info
}

// Info is a structure to store information about a driver
type Info struct {
	Label      string
	DeviceType DeviceType
	// Priority breaks ties between drivers that fit constraints equally well.
	// Higher values are preferred.
	Priority Priority
}

// Priority represents how much a driver is preferred over others
type Priority float32

const (
	// PriorityHigh is used for drivers backed by real hardware
	PriorityHigh Priority = 0.1
	// PriorityNormal is the default
	PriorityNormal Priority = 0.0
	// PriorityLow is used for synthetic sources
	PriorityLow Priority = -0.1
)

// PropertiesProvider provides the media properties a driver can produce
type PropertiesProvider interface {
	Properties() []prop.Media
}

// Adapter is a base interface that needs to be implemented by all drivers
type Adapter interface {
	OpenCloser
	PropertiesProvider
}

// VideoRecorder is an interface to encapsulate the recording process
// of a video frame source. The returned reader yields converted RGBA frames.
type VideoRecorder interface {
	VideoRecord(p prop.Media) (r video.Reader, err error)
}

// Driver is an adapter that has been registered to the manager
type Driver interface {
	Adapter
	ID() string
	Info() Info
	Status() State
}
