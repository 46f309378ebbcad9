// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/samplekit/utils"
)

// DefaultCrossingWindow bounds the zero-crossing search when
// TrimSpec.CrossingWindowSeconds is left zero. One millisecond is short
// enough to never eat audible material and long enough to find a crossing
// in anything but near-DC content.
const DefaultCrossingWindow = 0.001

// TrimSpec controls trailing-silence removal.
type TrimSpec struct {
	// ThresholdDB is the level below which a frame counts as silent,
	// in dB relative to full scale. Must be negative.
	ThresholdDB float64

	// MinTailSeconds is the shortest trailing silent run that triggers a
	// trim. Shorter tails are considered part of the sound (a natural
	// release or reverb) and left alone.
	MinTailSeconds float64

	// CrossingWindowSeconds limits how far past the last audible frame
	// the cut point may move while looking for a zero crossing. Zero
	// selects DefaultCrossingWindow.
	CrossingWindowSeconds float64
}

func (s TrimSpec) validate() error {
	if s.ThresholdDB >= 0 {
		return fmt.Errorf("%w: silence threshold %g dB, must be negative",
			ErrInvalidSpec, s.ThresholdDB)
	}

	if s.MinTailSeconds < 0 {
		return fmt.Errorf("%w: minimum tail %g s, must not be negative",
			ErrInvalidSpec, s.MinTailSeconds)
	}

	if s.CrossingWindowSeconds < 0 {
		return fmt.Errorf("%w: crossing window %g s, must not be negative",
			ErrInvalidSpec, s.CrossingWindowSeconds)
	}

	return nil
}

// TrimTail removes trailing silence from b.
//
// A frame is silent when every channel's absolute sample value is below
// the threshold. If the trailing silent run is shorter than
// MinTailSeconds the buffer is returned as is. Otherwise the cut lands on
// the first frame at or after the last audible one where every channel
// sits on zero or crosses it, so the truncated end does not click; if no
// such frame exists inside the crossing window the cut falls directly on
// the last audible frame. An entirely silent buffer trims to zero frames.
func TrimTail(b *Buffer, spec TrimSpec) (*Buffer, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	frames := b.Frames()
	if frames == 0 {
		return b, nil
	}

	threshold := float32(utils.DBToLinear(spec.ThresholdDB))

	last := -1
	for i := frames - 1; i >= 0; i-- {
		if frameAudible(b, i, threshold) {
			last = i
			break
		}
	}

	run := frames - 1 - last
	if float64(run) < spec.MinTailSeconds*float64(b.sampleRate) {
		return b, nil
	}

	if last < 0 {
		channels := make([][]float32, len(b.channels))
		for c := range channels {
			channels[c] = []float32{}
		}

		return &Buffer{
			channels:   channels,
			sampleRate: b.sampleRate,
			bitDepth:   b.bitDepth,
		}, nil
	}

	window := spec.CrossingWindowSeconds
	if window == 0 {
		window = DefaultCrossingWindow
	}

	limit := last + int(math.Round(window*float64(b.sampleRate)))
	if limit > frames-1 {
		limit = frames - 1
	}

	cut := last
	for i := last; i <= limit; i++ {
		if framesCrossZero(b, i) {
			cut = i
			break
		}
	}

	return b.Slice(0, cut+1)
}

// frameAudible reports whether any channel reaches the threshold at frame i.
func frameAudible(b *Buffer, i int, threshold float32) bool {
	for _, ch := range b.channels {
		v := ch[i]
		if v < 0 {
			v = -v
		}

		if v >= threshold {
			return true
		}
	}

	return false
}

// framesCrossZero reports whether every channel either sits exactly on
// zero at frame i or changes sign between frames i and i+1.
func framesCrossZero(b *Buffer, i int) bool {
	for _, ch := range b.channels {
		if ch[i] == 0 {
			continue
		}

		if i+1 >= len(ch) {
			return false
		}

		next := ch[i+1]
		if (ch[i] > 0 && next < 0) || (ch[i] < 0 && next > 0) {
			continue
		}

		return false
	}

	return true
}
