package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// Decoder reads integer PCM AIFF streams.
type Decoder struct{}

// Decode parses a whole AIFF stream into a buffer. Supported bit depths
// are 16, 24 and 32. When r does not seek, the stream is buffered in
// memory first; go-audio requires an io.ReadSeeker.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}

		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	depth := int(dec.BitDepth)
	if !audio.ValidBitDepth(depth) {
		return nil, fmt.Errorf("%w: %d bit", ErrUnsupportedBitDepth, depth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	samples := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = utils.PCMToFloat(v, depth)
	}

	return audio.FromInterleaved(samples, format.NumChannels, format.SampleRate, depth)
}
