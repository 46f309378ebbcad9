// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// Encoder writes integer PCM WAV files.
type Encoder struct{}

// Encode quantizes b at its bit depth and writes a canonical PCM WAV.
// The writer must seek: the RIFF chunk sizes are patched once the data
// length is known.
func (Encoder) Encode(w io.WriteSeeker, b *audio.Buffer) error {
	depth := b.BitDepth()

	interleaved := b.Interleaved()
	data := make([]int, len(interleaved))
	for i, s := range interleaved {
		data[i] = utils.FloatToPCM(s, depth)
	}

	enc := gowav.NewEncoder(w, b.SampleRate(), depth, b.NumChannels(), 1)

	pcm := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: b.NumChannels(),
			SampleRate:  b.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: depth,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
