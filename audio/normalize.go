package audio

import (
	"fmt"

	"github.com/ik5/samplekit/utils"
)

// NormalizeSpec sets the target peak for Normalize.
type NormalizeSpec struct {
	// TargetPeakDB is the desired peak level in dB relative to full
	// scale. Must not be above 0 dB.
	TargetPeakDB float64
}

// Normalize scales b by a single gain factor so its peak lands exactly on
// the target level. A silent buffer has no defined gain and is returned
// as is; a target above full scale is rejected because the result would
// clip on encode.
func Normalize(b *Buffer, spec NormalizeSpec) (*Buffer, error) {
	if spec.TargetPeakDB > 0 {
		return nil, fmt.Errorf("%w: target peak %+g dB is above full scale",
			ErrInvalidSpec, spec.TargetPeakDB)
	}

	peak := b.Peak()
	if peak == 0 {
		return b, nil
	}

	gain := utils.DBToLinear(spec.TargetPeakDB) / peak

	channels := make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		scaled := make([]float32, len(ch))
		for i, s := range ch {
			scaled[i] = float32(float64(s) * gain)
		}

		channels[c] = scaled
	}

	return &Buffer{
		channels:   channels,
		sampleRate: b.sampleRate,
		bitDepth:   b.bitDepth,
	}, nil
}
