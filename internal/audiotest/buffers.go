// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates audio buffers with known content for tests
// and examples across the module.
package audiotest

import (
	"math"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// Generate builds a buffer from a waveform function evaluated per frame
// and channel. It panics on invalid arguments; test setup has no use for
// an error path.
func Generate(sampleRate, channels, frames, bitDepth int, waveform func(frame, channel int) float32) *audio.Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for f := range frames {
			data[c][f] = waveform(f, c)
		}
	}

	buf, err := audio.NewBuffer(data, sampleRate, bitDepth)
	if err != nil {
		panic(err)
	}

	return buf
}

// Silence builds a 16 bit buffer of all zeros.
func Silence(sampleRate, channels, frames int) *audio.Buffer {
	return Generate(sampleRate, channels, frames, 16, func(frame, channel int) float32 {
		return 0.0
	})
}

// Constant builds a 16 bit buffer where every sample has the same value.
func Constant(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return Generate(sampleRate, channels, frames, 16, func(frame, channel int) float32 {
		return value
	})
}

// Sine builds a 16 bit buffer holding a full-scale sine wave on every
// channel.
func Sine(sampleRate, channels, frames int, frequency float64) *audio.Buffer {
	return Generate(sampleRate, channels, frames, 16, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// SineWithTail builds a sine burst followed by digital silence, the shape
// a sampler leaves after a note-off.
func SineWithTail(sampleRate, channels, toneFrames, tailFrames int, frequency float64) *audio.Buffer {
	return Generate(sampleRate, channels, toneFrames+tailFrames, 16, func(frame, channel int) float32 {
		if frame >= toneFrames {
			return 0.0
		}

		t := float64(frame) / float64(sampleRate)
		return float32(0.8 * math.Sin(2*math.Pi*frequency*t))
	})
}

// QuantizedSine builds a half-scale sine already snapped onto the grid of
// the given bit depth, so encoding and decoding it through an integer PCM
// codec is bit exact.
func QuantizedSine(sampleRate, channels, frames, bitDepth int, frequency float64) *audio.Buffer {
	return Generate(sampleRate, channels, frames, bitDepth, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		v := float32(0.5 * math.Sin(2*math.Pi*frequency*t))

		return utils.PCMToFloat(utils.FloatToPCM(v, bitDepth), bitDepth)
	})
}
