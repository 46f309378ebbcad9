// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// frameBytes is the size of one decoded frame: go-mp3 always emits
// 16-bit little-endian stereo PCM, whatever the source layout was.
const frameBytes = 4

// pcmStream is the slice of gomp3.Decoder the conversion needs. Tests
// substitute their own.
type pcmStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads MP3 streams. Decompression is delegated to
// github.com/hajimehoshi/go-mp3. There is no matching encoder; MP3 is
// decode only.
type Decoder struct{}

// Decode decompresses a whole MP3 stream into a 16 bit stereo buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMp3File, err)
	}

	return decodeStream(dec)
}

// decodeStream drains a 16-bit little-endian stereo PCM stream into a
// buffer.
func decodeStream(dec pcmStream) (*audio.Buffer, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 data: %w", err)
	}

	if len(data)%frameBytes != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncatedStream, len(data)%frameBytes)
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(data[2*i:]))
		samples[i] = utils.PCMToFloat(int(v), 16)
	}

	return audio.FromInterleaved(samples, 2, dec.SampleRate(), 16)
}
