package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/samplekit/utils"
)

func TestConvert_SameRateAndDepth(t *testing.T) {
	t.Parallel()

	buf := makeSine(44100, 2, 4410, 440, 0.5)

	got, err := Convert(buf, ConvertSpec{SampleRate: 44100, BitDepth: 16})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if got == buf {
		t.Error("Convert() returned the input buffer, want a copy")
	}

	if got.Frames() != buf.Frames() || got.SampleRate() != 44100 || got.BitDepth() != 16 {
		t.Error("Convert() changed buffer shape on a no-op conversion")
	}

	for i, v := range buf.Channel(0) {
		if got.Channel(0)[i] != v {
			t.Fatalf("sample %d changed on no-op conversion", i)
		}
	}
}

func TestConvert_RateChangesFrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		frames  int
	}{
		{
			name:    "44.1k to 48k",
			srcRate: 44100,
			dstRate: 48000,
			frames:  44100,
		},
		{
			name:    "48k to 44.1k",
			srcRate: 48000,
			dstRate: 44100,
			frames:  48000,
		},
		{
			name:    "48k to 16k",
			srcRate: 48000,
			dstRate: 16000,
			frames:  33000,
		},
		{
			name:    "22.05k to 44.1k",
			srcRate: 22050,
			dstRate: 44100,
			frames:  10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := makeSine(tt.srcRate, 1, tt.frames, 330, 0.5)

			got, err := Convert(buf, ConvertSpec{SampleRate: tt.dstRate, BitDepth: 16})
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}

			want := int(math.Round(float64(tt.frames) * float64(tt.dstRate) / float64(tt.srcRate)))
			if got.Frames() != want {
				t.Errorf("Convert() frames = %d, want %d", got.Frames(), want)
			}

			if got.SampleRate() != tt.dstRate {
				t.Errorf("Convert() sample rate = %d, want %d", got.SampleRate(), tt.dstRate)
			}
		})
	}
}

// TestConvert_RoundTripKeepsEnergy resamples a mid-band tone up and back
// down; the overall level must survive.
func TestConvert_RoundTripKeepsEnergy(t *testing.T) {
	t.Parallel()

	buf := makeSine(44100, 1, 44100, 440, 0.6)

	up, err := Convert(buf, ConvertSpec{SampleRate: 48000, BitDepth: 16})
	if err != nil {
		t.Fatalf("Convert() up unexpected error: %v", err)
	}

	down, err := Convert(up, ConvertSpec{SampleRate: 44100, BitDepth: 16})
	if err != nil {
		t.Fatalf("Convert() down unexpected error: %v", err)
	}

	if down.Frames() != buf.Frames() {
		t.Errorf("round trip frames = %d, want %d", down.Frames(), buf.Frames())
	}

	src := buf.RMS()
	got := down.RMS()

	if math.Abs(got-src)/src > 0.03 {
		t.Errorf("round trip RMS = %v, want within 3%% of %v", got, src)
	}
}

// TestConvert_DownsampleFiltersAliases pushes a tone far above the target
// Nyquist through a downsample; it must come out strongly attenuated, not
// folded back into the audible band.
func TestConvert_DownsampleFiltersAliases(t *testing.T) {
	t.Parallel()

	buf := makeSine(48000, 1, 48000, 21000, 0.7)

	got, err := Convert(buf, ConvertSpec{SampleRate: 16000, BitDepth: 16})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	src := buf.RMS()
	out := got.RMS()

	// At least 20 dB down.
	if out > src*0.1 {
		t.Errorf("21 kHz tone after downsample to 16 kHz: RMS %v, want below %v", out, src*0.1)
	}
}

func TestConvert_DepthReductionSnapsToGrid(t *testing.T) {
	t.Parallel()

	buf := makeSine(44100, 2, 4410, 440, 0.5)
	buf.bitDepth = 24

	got, err := Convert(buf, ConvertSpec{SampleRate: 44100, BitDepth: 16})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if got.BitDepth() != 16 {
		t.Fatalf("Convert() bit depth = %d, want 16", got.BitDepth())
	}

	scale := utils.PCMScale(16)

	for c := range got.NumChannels() {
		for i, v := range got.Channel(c) {
			stepped := float64(v) * scale
			if math.Abs(stepped-math.Round(stepped)) > 1e-3 {
				t.Fatalf("channel %d sample %d = %v, not on the 16 bit grid", c, i, v)
			}

			// Dithered rounding moves a sample at most 1.5 steps.
			diff := math.Abs(float64(v)-float64(buf.Channel(c)[i])) * scale
			if diff > 1.5 {
				t.Fatalf("channel %d sample %d moved %v steps, want at most 1.5", c, i, diff)
			}
		}
	}
}

// TestConvert_DepthIncreaseKeepsSamples verifies raising the depth is a
// relabel, not a resample.
func TestConvert_DepthIncreaseKeepsSamples(t *testing.T) {
	t.Parallel()

	buf := makeSine(44100, 1, 4410, 440, 0.5)

	got, err := Convert(buf, ConvertSpec{SampleRate: 44100, BitDepth: 24})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if got.BitDepth() != 24 {
		t.Fatalf("Convert() bit depth = %d, want 24", got.BitDepth())
	}

	for i, v := range buf.Channel(0) {
		if got.Channel(0)[i] != v {
			t.Fatalf("sample %d changed on depth increase", i)
		}
	}
}

// TestConvert_Deterministic verifies converting the same input twice gives
// identical output, dither included.
func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()

	buf := makeSine(48000, 2, 9600, 1000, 0.4)
	buf.bitDepth = 24

	spec := ConvertSpec{SampleRate: 44100, BitDepth: 16}

	first, err := Convert(buf, spec)
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	second, err := Convert(buf, spec)
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	for c := range first.NumChannels() {
		for i, v := range first.Channel(c) {
			if second.Channel(c)[i] != v {
				t.Fatalf("channel %d sample %d differs between runs", c, i)
			}
		}
	}
}

func TestConvert_EmptyBuffer(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer([][]float32{{}, {}}, 44100, 24)
	if err != nil {
		t.Fatalf("NewBuffer() unexpected error: %v", err)
	}

	got, err := Convert(buf, ConvertSpec{SampleRate: 48000, BitDepth: 16})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if got.Frames() != 0 || got.SampleRate() != 48000 || got.BitDepth() != 16 {
		t.Error("Convert() of empty buffer produced wrong shape")
	}
}

func TestConvert_InvalidSpec(t *testing.T) {
	t.Parallel()

	buf := makeSilence(44100, 1, 100)

	tests := []struct {
		name string
		spec ConvertSpec
	}{
		{
			name: "zero sample rate",
			spec: ConvertSpec{SampleRate: 0, BitDepth: 16},
		},
		{
			name: "negative sample rate",
			spec: ConvertSpec{SampleRate: -48000, BitDepth: 16},
		},
		{
			name: "unsupported bit depth",
			spec: ConvertSpec{SampleRate: 44100, BitDepth: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Convert(buf, tt.spec); !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("Convert() error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func BenchmarkConvert_Resample(b *testing.B) {
	buf := makeSine(44100, 2, 44100, 440, 0.5)
	spec := ConvertSpec{SampleRate: 48000, BitDepth: 16}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Convert(buf, spec)
	}
}

func BenchmarkConvert_Requantize(b *testing.B) {
	buf := makeSine(44100, 2, 44100, 440, 0.5)
	buf.bitDepth = 24
	spec := ConvertSpec{SampleRate: 44100, BitDepth: 16}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Convert(buf, spec)
	}
}
