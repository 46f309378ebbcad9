package audio

import "fmt"

// JoinStereo combines two mono buffers into one stereo buffer, left take
// first. Both inputs must be mono and agree on sample rate and bit depth.
// When the takes differ in length the result covers the overlapping
// frames only.
func JoinStereo(left, right *Buffer) (*Buffer, error) {
	if left.NumChannels() != 1 || right.NumChannels() != 1 {
		return nil, fmt.Errorf("%w: join needs mono inputs, got %d and %d channels",
			ErrInvalidSpec, left.NumChannels(), right.NumChannels())
	}

	if left.sampleRate != right.sampleRate {
		return nil, fmt.Errorf("%w: sample rates differ, %d Hz vs %d Hz",
			ErrInvalidSpec, left.sampleRate, right.sampleRate)
	}

	if left.bitDepth != right.bitDepth {
		return nil, fmt.Errorf("%w: bit depths differ, %d bit vs %d bit",
			ErrInvalidSpec, left.bitDepth, right.bitDepth)
	}

	frames := min(left.Frames(), right.Frames())

	l := append([]float32(nil), left.channels[0][:frames]...)
	r := append([]float32(nil), right.channels[0][:frames]...)

	return &Buffer{
		channels:   [][]float32{l, r},
		sampleRate: left.sampleRate,
		bitDepth:   left.bitDepth,
	}, nil
}
