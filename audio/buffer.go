// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Buffer holds decoded audio as one sample slice per channel (1 = mono,
// 2 = stereo). Samples are normalized float32 in [-1, 1]. A Buffer also
// carries the sample rate and the PCM bit depth it was decoded from (or
// should be encoded to); processing itself always happens on the floats.
//
// Transforms never mutate their input buffer. NewBuffer takes ownership of
// the channel slices; callers must not write to them afterwards.
type Buffer struct {
	channels   [][]float32
	sampleRate int
	bitDepth   int
}

// NewBuffer validates the channel layout and wraps it in a Buffer. Every
// channel must hold the same number of frames, the sample rate must be
// positive and the bit depth one of 16, 24 or 32.
func NewBuffer(channels [][]float32, sampleRate, bitDepth int) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	frames := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrInvalidBuffer, i+1, len(ch), frames)
		}
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d Hz", ErrInvalidBuffer, sampleRate)
	}

	if !ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: bit depth %d (supported: 16, 24, 32)",
			ErrInvalidBuffer, bitDepth)
	}

	return &Buffer{
		channels:   channels,
		sampleRate: sampleRate,
		bitDepth:   bitDepth,
	}, nil
}

// FromInterleaved splits an interleaved sample stream (frame after frame,
// one sample per channel within a frame) into per-channel slices. The
// sample count must be a multiple of numChannels.
func FromInterleaved(samples []float32, numChannels, sampleRate, bitDepth int) (*Buffer, error) {
	if numChannels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, numChannels)
	}

	if len(samples)%numChannels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels",
			ErrInvalidBuffer, len(samples), numChannels)
	}

	frames := len(samples) / numChannels
	channels := make([][]float32, numChannels)

	for c := range channels {
		channels[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * numChannels
		for c := range channels {
			channels[c][f] = samples[base+c]
		}
	}

	return NewBuffer(channels, sampleRate, bitDepth)
}

// ValidBitDepth reports whether depth is a supported PCM bit depth.
func ValidBitDepth(depth int) bool {
	return depth == 16 || depth == 24 || depth == 32
}

// SampleRate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// BitDepth of the PCM representation this buffer maps to.
func (b *Buffer) BitDepth() int { return b.bitDepth }

// NumChannels count (1=mono, 2=stereo).
func (b *Buffer) NumChannels() int { return len(b.channels) }

// Frames returns the number of sample frames per channel.
func (b *Buffer) Frames() int {
	if len(b.channels) == 0 {
		return 0
	}

	return len(b.channels[0])
}

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.sampleRate)
}

// Channel returns the samples of channel c. The slice is shared with the
// buffer; treat it as read-only.
func (b *Buffer) Channel(c int) []float32 { return b.channels[c] }

// Slice returns a copy of frames [start, end) keeping rate and depth.
// The range must be non-empty and lie inside the buffer.
func (b *Buffer) Slice(start, end int) (*Buffer, error) {
	if start < 0 || end <= start || end > b.Frames() {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrRange, start, end, b.Frames())
	}

	channels := make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		channels[c] = append([]float32(nil), ch[start:end]...)
	}

	return &Buffer{
		channels:   channels,
		sampleRate: b.sampleRate,
		bitDepth:   b.bitDepth,
	}, nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	channels := make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		channels[c] = append([]float32(nil), ch...)
	}

	return &Buffer{
		channels:   channels,
		sampleRate: b.sampleRate,
		bitDepth:   b.bitDepth,
	}
}

// Interleaved flattens the buffer back into an interleaved stream, the
// layout PCM encoders expect.
func (b *Buffer) Interleaved() []float32 {
	numChannels := len(b.channels)
	frames := b.Frames()
	out := make([]float32, frames*numChannels)

	for f := range frames {
		base := f * numChannels
		for c, ch := range b.channels {
			out[base+c] = ch[f]
		}
	}

	return out
}

// Peak returns the largest absolute sample value across all channels.
func (b *Buffer) Peak() float64 {
	peak := 0.0

	for _, ch := range b.channels {
		for _, s := range ch {
			v := math.Abs(float64(s))
			if v > peak {
				peak = v
			}
		}
	}

	return peak
}

// RMS returns the root mean square level across all channels, 0 for an
// empty buffer.
func (b *Buffer) RMS() float64 {
	total := 0
	sum := 0.0

	for _, ch := range b.channels {
		total += len(ch)
		for _, s := range ch {
			sum += float64(s) * float64(s)
		}
	}

	if total == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(total))
}
