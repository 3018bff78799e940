// Package yuyv opens video sources that deliver packed 4:2:2 YUV and hands
// out their frames as RGBA images.
package yuyv

import (
	"errors"
	"fmt"
	"math"

	"github.com/pion/yuyv/internal/logging"
	"github.com/pion/yuyv/pkg/driver"
	"github.com/pion/yuyv/pkg/driver/availability"
	"github.com/pion/yuyv/pkg/io/video"
	"github.com/pion/yuyv/pkg/prop"
)

var (
	errNotFound = errors.New("failed to find the best driver that fits the constraints")

	logger = logging.NewLogger("yuyv")
)

// Options stores parameters used by OpenVideo.
type Options struct {
	transform video.TransformFunc
}

// Option is a type of OpenVideo functional option.
type Option func(*Options)

// WithTransforms will be applied to every frame coming from the driver,
// in order: driver -> transforms -> Read.
func WithTransforms(transformFuncs ...video.TransformFunc) Option {
	return func(o *Options) {
		o.transform = video.Merge(transformFuncs...)
	}
}

// OpenVideo selects the registered driver whose properties best fit
// constraints, starts recording from it and returns the resulting source.
// Zero valued constraint fields are unconstrained.
func OpenVideo(constraints prop.Media, opts ...Option) (*VideoSource, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	filter := driver.FilterVideoRecorder()
	if constraints.DeviceID != "" {
		filter = driver.FilterAnd(filter, driver.FilterID(constraints.DeviceID))
	}

	d, c, err := selectBestDriver(driver.GetManager(), filter, constraints)
	if err != nil {
		return nil, err
	}

	return newVideoSource(&o, d, c)
}

type driverProperties struct {
	d     driver.Driver
	props []prop.Media
}

// queryDriverProperties returns the properties of the drivers in m matching
// filter, in registration order.
func queryDriverProperties(m *driver.Manager, filter driver.FilterFn) []driverProperties {
	var needToClose []driver.Driver
	drivers := m.Query(filter)
	results := make([]driverProperties, 0, len(drivers))

	for _, d := range drivers {
		if d.Status() == driver.StateClosed {
			err := d.Open()
			if err != nil {
				if availability.IsError(err) {
					logger.Debugf("skipping %s: %v", d.Info().Label, err)
				} else {
					logger.Warnf("failed to open %s: %v", d.Info().Label, err)
				}
				continue
			}
			needToClose = append(needToClose, d)
		}

		results = append(results, driverProperties{d: d, props: d.Properties()})
	}

	for _, d := range needToClose {
		// Opened only to read the properties
		if err := d.Close(); err != nil {
			logger.Warnf("failed to close %s: %v", d.Info().Label, err)
		}
	}

	return results
}

// selectBestDriver implements the SelectSettings algorithm. On a tie the
// driver registered first wins.
// Reference: https://w3c.github.io/mediacapture-main/#dfn-selectsettings
func selectBestDriver(m *driver.Manager, filter driver.FilterFn, constraints prop.Media) (driver.Driver, prop.Media, error) {
	var bestDriver driver.Driver
	var bestProp prop.Media
	minFitnessDist := math.Inf(1)

	for _, dp := range queryDriverProperties(m, filter) {
		d := dp.d
		priority := float64(d.Info().Priority)
		for _, p := range dp.props {
			fitnessDist := constraints.FitnessDistance(p) - priority
			if fitnessDist < minFitnessDist {
				minFitnessDist = fitnessDist
				bestDriver = d
				bestProp = p
			}
		}
	}

	if bestDriver == nil {
		return nil, prop.Media{}, errNotFound
	}

	logger.Debugf("selected %s (%s): %dx%d %s @ %.1f fps, distance %.3f",
		bestDriver.Info().Label, bestDriver.ID(),
		bestProp.Width, bestProp.Height, bestProp.FrameFormat, bestProp.FrameRate, minFitnessDist)

	constraints.Merge(bestProp)
	return bestDriver, constraints, nil
}

func newVideoSource(o *Options, d driver.Driver, constraints prop.Media) (*VideoSource, error) {
	if err := d.Open(); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", d.Info().Label, err)
	}

	r, err := d.(driver.VideoRecorder).VideoRecord(constraints)
	if err != nil {
		// VideoRecord closes the driver on failure
		return nil, fmt.Errorf("failed to record from %s: %w", d.Info().Label, err)
	}

	if o.transform != nil {
		r = o.transform(r)
	}

	return &VideoSource{
		d:     d,
		r:     r,
		media: constraints,
	}, nil
}
