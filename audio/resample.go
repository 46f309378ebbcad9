// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Sample rate conversion evaluates a Kaiser-windowed sinc kernel at every
// output instant. The window's beta of 6 keeps sidelobes around -60 dB;
// when downsampling, the kernel stretches by the rate ratio so its cutoff
// moves down to the destination Nyquist and aliasing content is filtered
// out before decimation.
const (
	sincTapsPerSide = 16
	kaiserBeta      = 6.0
)

var kaiserDenom = bessel0(kaiserBeta)

// resampleBuffer converts b to dstRate. The output length is
// round(frames * dstRate / srcRate); bit depth is carried over untouched.
func resampleBuffer(b *Buffer, dstRate int) *Buffer {
	ratio := float64(dstRate) / float64(b.sampleRate)
	frames := int(math.Round(float64(b.Frames()) * ratio))

	channels := make([][]float32, len(b.channels))
	for c, ch := range b.channels {
		channels[c] = resampleChannel(ch, b.sampleRate, dstRate, frames)
	}

	return &Buffer{
		channels:   channels,
		sampleRate: dstRate,
		bitDepth:   b.bitDepth,
	}
}

// resampleChannel renders frames output samples from src. Each output
// sample is the windowed sinc interpolation of the source at position
// j * srcRate / dstRate, normalized by the kernel sum so truncation at
// the buffer edges does not fade the signal.
func resampleChannel(src []float32, srcRate, dstRate, frames int) []float32 {
	dst := make([]float32, frames)
	if len(src) == 0 {
		return dst
	}

	step := float64(srcRate) / float64(dstRate)

	cutoff := 1.0
	half := float64(sincTapsPerSide)
	if dstRate < srcRate {
		cutoff = float64(dstRate) / float64(srcRate)
		half = float64(sincTapsPerSide) / cutoff
	}

	for j := range dst {
		pos := float64(j) * step

		lo := int(math.Ceil(pos - half))
		hi := int(math.Floor(pos + half))
		if lo < 0 {
			lo = 0
		}
		if hi > len(src)-1 {
			hi = len(src) - 1
		}

		var sum, norm float64
		for i := lo; i <= hi; i++ {
			x := pos - float64(i)
			w := sinc(cutoff*x) * kaiser(x/half)
			sum += float64(src[i]) * w
			norm += w
		}

		if norm != 0 {
			dst[j] = float32(sum / norm)
		}
	}

	return dst
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-10 {
		return 1.0
	}

	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// kaiser evaluates the Kaiser window over [-1, 1].
func kaiser(x float64) float64 {
	if x <= -1 || x >= 1 {
		return 0
	}

	return bessel0(kaiserBeta*math.Sqrt(1-x*x)) / kaiserDenom
}

// bessel0 computes the modified Bessel function of the first kind, order 0,
// by series expansion.
func bessel0(x float64) float64 {
	sum := 1.0
	term := 1.0

	for k := 1; k < 50; k++ {
		term *= (x / (2 * float64(k))) * (x / (2 * float64(k)))
		sum += term

		if term < 1e-12*sum {
			break
		}
	}

	return sum
}
