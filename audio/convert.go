// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ik5/samplekit/utils"
)

// ConvertSpec selects the target sample rate and bit depth for Convert.
type ConvertSpec struct {
	SampleRate int
	BitDepth   int
}

func (s ConvertSpec) validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d Hz, must be positive",
			ErrInvalidSpec, s.SampleRate)
	}

	if !ValidBitDepth(s.BitDepth) {
		return fmt.Errorf("%w: bit depth %d (supported: 16, 24, 32)",
			ErrInvalidSpec, s.BitDepth)
	}

	return nil
}

// ditherSeed keeps requantization reproducible: converting the same buffer
// twice yields identical output.
const ditherSeed = 0x9E3779B97F4A7C15

// Convert returns b at the spec's sample rate and bit depth. The sample
// rate changes through windowed sinc resampling. Reducing the bit depth
// snaps samples onto the coarser grid with TPDF dither ahead of the
// rounding; raising it only relabels the buffer, since float samples
// already hold more resolution than any supported PCM depth.
func Convert(b *Buffer, spec ConvertSpec) (*Buffer, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	out := b
	if spec.SampleRate != b.sampleRate {
		out = resampleBuffer(b, spec.SampleRate)
	}

	if spec.BitDepth < out.bitDepth {
		out = requantize(out, spec.BitDepth)
	}

	if out == b {
		out = b.Clone()
	}

	out.bitDepth = spec.BitDepth

	return out, nil
}

// requantize rounds samples to the target depth's grid. Triangular dither
// of two LSB peak to peak decorrelates the rounding error from the signal,
// trading correlated distortion for a constant noise floor.
func requantize(b *Buffer, depth int) *Buffer {
	scale := utils.PCMScale(depth)
	rng := rand.New(rand.NewPCG(ditherSeed, uint64(depth)))

	channels := make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		quantized := make([]float32, len(ch))
		for i, s := range ch {
			dither := rng.Float64() - rng.Float64()

			q := math.Round(float64(s)*scale + dither)
			if q > scale-1 {
				q = scale - 1
			} else if q < -scale {
				q = -scale
			}

			quantized[i] = float32(q / scale)
		}

		channels[c] = quantized
	}

	return &Buffer{
		channels:   channels,
		sampleRate: b.sampleRate,
		bitDepth:   depth,
	}
}
