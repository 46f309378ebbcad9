package audio

import (
	"fmt"
	"math"
)

// SliceSpec describes tempo-aligned slicing.
type SliceSpec struct {
	// BPM is the tempo of the material in beats per minute.
	BPM float64

	// BarsPerSlice is the length of each slice in bars.
	BarsPerSlice int

	// BeatsPerBar sets the meter. Zero means 4 (common time).
	BeatsPerBar int
}

func (s SliceSpec) validate() error {
	if s.BPM <= 0 {
		return fmt.Errorf("%w: tempo %g BPM, must be positive", ErrInvalidSpec, s.BPM)
	}

	if s.BarsPerSlice <= 0 {
		return fmt.Errorf("%w: %d bars per slice, must be positive",
			ErrInvalidSpec, s.BarsPerSlice)
	}

	if s.BeatsPerBar < 0 {
		return fmt.Errorf("%w: %d beats per bar, must not be negative",
			ErrInvalidSpec, s.BeatsPerBar)
	}

	return nil
}

// SliceSeconds returns the duration of one slice.
func (s SliceSpec) SliceSeconds() float64 {
	beats := s.BeatsPerBar
	if beats == 0 {
		beats = 4
	}

	return float64(s.BarsPerSlice*beats) * 60 / s.BPM
}

// SliceBeats partitions b into consecutive slices of BarsPerSlice bars
// each. Slices are copies covering the source exactly, in order, with no
// overlap. The last slice keeps whatever partial bar remains; a remainder
// of zero frames produces no extra slice. An empty buffer yields no
// slices.
func SliceBeats(b *Buffer, spec SliceSpec) ([]*Buffer, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	sliceFrames := int(math.Round(spec.SliceSeconds() * float64(b.sampleRate)))
	if sliceFrames < 1 {
		return nil, fmt.Errorf("%w: slice of %g s spans no frames at %d Hz",
			ErrInvalidSpec, spec.SliceSeconds(), b.sampleRate)
	}

	frames := b.Frames()
	slices := make([]*Buffer, 0, (frames+sliceFrames-1)/sliceFrames)

	for start := 0; start < frames; start += sliceFrames {
		end := min(start+sliceFrames, frames)

		s, err := b.Slice(start, end)
		if err != nil {
			return nil, err
		}

		slices = append(slices, s)
	}

	return slices, nil
}
