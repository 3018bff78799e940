package prop

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/pion/yuyv/pkg/frame"
)

type Media struct {
	DeviceID string
	Video
}

// Merge merges all the field values from o to p, except zero values.
func (p *Media) Merge(o Media) {
	rp := reflect.ValueOf(p).Elem()
	ro := reflect.ValueOf(o)

	// merge b fields to a recursively
	var merge func(a, b reflect.Value)
	merge = func(a, b reflect.Value) {
		numFields := a.NumField()
		for i := 0; i < numFields; i++ {
			fieldA := a.Field(i)
			fieldB := b.Field(i)

			// if a is a struct, b is also a struct. Then,
			// we recursively merge them
			if fieldA.Kind() == reflect.Struct {
				merge(fieldA, fieldB)
				continue
			}

			if fieldB.IsZero() {
				continue
			}

			fieldA.Set(fieldB)
		}
	}

	merge(rp, ro)
}

// FitnessDistance returns how far o is from the ideal p. Zero valued fields
// of p are unconstrained and don't count.
func (p *Media) FitnessDistance(o Media) float64 {
	cmps := comparisons{}
	if p.DeviceID != "" {
		cmps.add(o.DeviceID, p.DeviceID)
	}
	if p.Width != 0 {
		cmps.add(o.Width, p.Width)
	}
	if p.Height != 0 {
		cmps.add(o.Height, p.Height)
	}
	if p.FrameRate != 0 {
		cmps.add(o.FrameRate, p.FrameRate)
	}
	if p.FrameFormat != "" {
		cmps.add(o.FrameFormat, p.FrameFormat)
	}
	return cmps.fitnessDistance()
}

type comparison struct {
	actual, ideal string
}

type comparisons []comparison

func (c *comparisons) add(actual, ideal interface{}) {
	*c = append(*c, comparison{fmt.Sprint(actual), fmt.Sprint(ideal)})
}

// fitnessDistance is an implementation for https://w3c.github.io/mediacapture-main/#dfn-fitness-distance
func (c comparisons) fitnessDistance() float64 {
	var dist float64

	for _, cmp := range c {
		actual, ideal := cmp.actual, cmp.ideal
		if actual == ideal {
			continue
		}

		actualF, err1 := strconv.ParseFloat(actual, 64)
		idealF, err2 := strconv.ParseFloat(ideal, 64)

		switch {
		// If both of the values are numeric, we need to normalize the values to get the distance
		case err1 == nil && err2 == nil:
			dist += math.Abs(actualF-idealF) / math.Max(math.Abs(actualF), math.Abs(idealF))
		// If both of the values are not numeric, the only comparison value is either 0 (matched) or 1 (not matched)
		case err1 != nil && err2 != nil:
			dist++
		// Comparing a numeric value with a non-numeric value is a an internal error, so panic.
		default:
			panic("fitnessDistance can't mix comparisons.")
		}
	}

	return dist
}

// Video represents a video's properties
type Video struct {
	Width, Height int
	FrameRate     float32
	FrameFormat   frame.Format
}

// FrameSize returns the number of bytes an unpadded frame with these
// properties occupies.
func (v Video) FrameSize() (int, error) {
	return frame.FrameSize(v.FrameFormat, v.Width, v.Height, 0)
}
