package audio

import (
	"math"
)

// makeBuffer is a test helper that builds a buffer from a waveform
// function evaluated per frame and channel.
func makeBuffer(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for f := range frames {
			data[c][f] = waveform(f, c)
		}
	}

	buf, err := NewBuffer(data, sampleRate, 16)
	if err != nil {
		panic(err)
	}

	return buf
}

// makeSilence builds a buffer of all zeros.
func makeSilence(sampleRate, channels, frames int) *Buffer {
	return makeBuffer(sampleRate, channels, frames, func(frame, channel int) float32 {
		return 0.0
	})
}

// makeSine builds a buffer holding a sine wave of the given frequency and
// amplitude on every channel.
func makeSine(sampleRate, channels, frames int, frequency, amplitude float64) *Buffer {
	return makeBuffer(sampleRate, channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// makeConstant builds a buffer where every sample has the same value.
func makeConstant(sampleRate, channels, frames int, value float32) *Buffer {
	return makeBuffer(sampleRate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

// makeSineWithTail builds a sine burst followed by pure digital silence,
// the shape a sampler note-off leaves behind.
func makeSineWithTail(sampleRate, channels, toneFrames, tailFrames int, frequency float64) *Buffer {
	return makeBuffer(sampleRate, channels, toneFrames+tailFrames, func(frame, channel int) float32 {
		if frame >= toneFrames {
			return 0.0
		}

		t := float64(frame) / float64(sampleRate)
		return float32(0.8 * math.Sin(2*math.Pi*frequency*t))
	})
}
