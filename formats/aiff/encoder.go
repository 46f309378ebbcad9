// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	gaudio "github.com/go-audio/audio"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// Encoder writes integer PCM AIFF files.
type Encoder struct{}

// Encode quantizes b at its bit depth and writes an AIFF-C free of
// compression. The writer must seek so the chunk sizes can be patched
// after the sound data is written.
func (Encoder) Encode(w io.WriteSeeker, b *audio.Buffer) error {
	depth := b.BitDepth()

	interleaved := b.Interleaved()
	data := make([]int, len(interleaved))
	for i, s := range interleaved {
		data[i] = utils.FloatToPCM(s, depth)
	}

	enc := goaiff.NewEncoder(w, b.SampleRate(), depth, b.NumChannels())

	pcm := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: b.NumChannels(),
			SampleRate:  b.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: depth,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}

	return nil
}
