package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// Decoder reads integer PCM WAV streams.
type Decoder struct{}

// Decode parses a whole WAV stream into a buffer. Only integer PCM at 16,
// 24 or 32 bits is supported; compressed and float variants are rejected.
// When r does not seek, the stream is buffered in memory first.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav stream: %w", err)
		}

		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading wav info: %w", err)
	}

	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	depth := int(dec.BitDepth)
	if !audio.ValidBitDepth(depth) {
		return nil, fmt.Errorf("%w: %d bit", ErrUnsupportedBitDepth, depth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	samples := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = utils.PCMToFloat(v, depth)
	}

	return audio.FromInterleaved(samples, int(dec.NumChans), int(dec.SampleRate), depth)
}
