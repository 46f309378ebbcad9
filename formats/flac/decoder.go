package flac

import (
	"fmt"
	"io"

	mflac "github.com/mewkiz/flac"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/utils"
)

// Decoder reads FLAC streams.
type Decoder struct{}

// Decode parses a whole FLAC stream into a buffer, frame by frame. The
// parser hands back fully decoded subframes with channel decorrelation
// already undone, so samples only need scaling into float range.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	stream, err := mflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}

	info := stream.Info

	depth := int(info.BitsPerSample)
	if !audio.ValidBitDepth(depth) {
		return nil, fmt.Errorf("%w: %d bit", ErrUnsupportedBitDepth, depth)
	}

	numChannels := int(info.NChannels)

	channels := make([][]float32, numChannels)
	for c := range channels {
		channels[c] = make([]float32, 0, info.NSamples)
	}

	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decoding flac frame: %w", err)
		}

		if len(f.Subframes) != numChannels {
			return nil, fmt.Errorf("%w: frame has %d channels, stream info says %d",
				ErrCorruptStream, len(f.Subframes), numChannels)
		}

		for c, sub := range f.Subframes {
			for _, v := range sub.Samples {
				channels[c] = append(channels[c], utils.PCMToFloat(int(v), depth))
			}
		}
	}

	return audio.NewBuffer(channels, int(info.SampleRate), depth)
}
