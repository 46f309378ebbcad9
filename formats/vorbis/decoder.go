package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/samplekit/audio"
)

// vorbisStream is the slice of oggvorbis.Reader the drain loop needs.
// Read fills p with interleaved samples and returns the number of values
// written, always a multiple of the channel count.
type vorbisStream interface {
	Read([]float32) (int, error)
	SampleRate() int
	Channels() int
}

// Decoder reads Ogg Vorbis streams. Decompression is delegated to
// github.com/jfreymuth/oggvorbis. There is no matching encoder; Vorbis
// is decode only.
type Decoder struct{}

// Decode decompresses a whole Ogg Vorbis stream. Vorbis carries float
// samples with no inherent PCM width, so decoded buffers are tagged as
// 16 bit, the usual target when bouncing lossy sources to PCM.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOggFile, err)
	}

	return decodeStream(dec)
}

func decodeStream(dec vorbisStream) (*audio.Buffer, error) {
	samples := make([]float32, 0, 4096)
	chunk := make([]float32, 4096)

	for {
		n, err := dec.Read(chunk)
		samples = append(samples, chunk[:n]...)

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading vorbis data: %w", err)
		}
	}

	return audio.FromInterleaved(samples, dec.Channels(), dec.SampleRate(), 16)
}
