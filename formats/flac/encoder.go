// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	mflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// encodeBlockSize is the fixed block size used for all encoded frames.
// 4096 samples is the reference encoder's default for 44.1 kHz material.
const encodeBlockSize = 4096

// Encoder writes FLAC streams. Samples are stored as verbatim subframes,
// so the output is losslessly framed but not prediction-compressed.
type Encoder struct{}

// Encode writes buf as a FLAC stream. Only 16 and 24 bit depths and at
// most two channels are supported; anything else fails before any bytes
// are written.
func (Encoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	depth := buf.BitDepth()
	if depth != 16 && depth != 24 {
		return fmt.Errorf("%w: %d bit", ErrUnsupportedBitDepth, depth)
	}

	var layout frame.Channels

	switch buf.NumChannels() {
	case 1:
		layout = frame.ChannelsMono
	case 2:
		layout = frame.ChannelsLR
	default:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedChannelCount, buf.NumChannels())
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  encodeBlockSize,
		BlockSizeMax:  encodeBlockSize,
		SampleRate:    uint32(buf.SampleRate()),
		NChannels:     uint8(buf.NumChannels()),
		BitsPerSample: uint8(depth),
		NSamples:      uint64(buf.Frames()),
	}

	enc, err := mflac.NewEncoder(w, info)
	if err != nil {
		return fmt.Errorf("writing flac header: %w", err)
	}

	frames := buf.Frames()

	for start, num := 0, uint64(0); start < frames; start, num = start+encodeBlockSize, num+1 {
		n := min(encodeBlockSize, frames-start)

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(n),
				SampleRate:        uint32(buf.SampleRate()),
				Channels:          layout,
				BitsPerSample:     uint8(depth),
				Num:               num,
			},
			Subframes: make([]*frame.Subframe, buf.NumChannels()),
		}

		for c := range f.Subframes {
			ch := buf.Channel(c)
			samples := make([]int32, n)

			for i := range samples {
				samples[i] = int32(utils.FloatToPCM(ch[start+i], depth))
			}

			f.Subframes[c] = &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples,
				NSamples:  n,
			}
		}

		if err := enc.WriteFrame(f); err != nil {
			return fmt.Errorf("writing flac frame %d: %w", num, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing flac: %w", err)
	}

	return nil
}
