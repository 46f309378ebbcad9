// SPDX-License-Identifier: EPL-2.0

// Package audio provides the buffer type and processing operations for
// preparing audio sample libraries.
//
// This package contains the core building blocks:
//   - Buffer for decoded audio held as per-channel float32 samples
//   - TrimTail for trailing-silence removal
//   - SliceBeats for tempo-aligned slicing
//   - Normalize for exact peak targeting
//   - Convert for sample rate and bit depth conversion
//   - JoinStereo for combining mono takes into stereo
//   - Registry for codec registration by format key
//
// # Buffers
//
// A Buffer holds one float32 slice per channel plus the sample rate and
// the PCM bit depth it maps to at the codec boundary:
//
//	buf, err := audio.NewBuffer(channels, 44100, 16)
//	mono, err := audio.FromInterleaved(samples, 1, 48000, 24)
//
// Every operation treats buffers as immutable: transforms return new
// buffers (or the input itself when nothing changed) and never write to
// their input's channel data.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
// Quantization to integer PCM happens only when a codec writes the buffer
// out.
//
// # Processing
//
// Each operation takes a spec struct describing the desired result:
//
//	trimmed, err := audio.TrimTail(buf, audio.TrimSpec{
//	    ThresholdDB:    -60,
//	    MinTailSeconds: 1.0,
//	})
//
//	slices, err := audio.SliceBeats(buf, audio.SliceSpec{BPM: 120, BarsPerSlice: 2})
//
//	peaked, err := audio.Normalize(buf, audio.NormalizeSpec{TargetPeakDB: -0.1})
//
//	converted, err := audio.Convert(buf, audio.ConvertSpec{SampleRate: 44100, BitDepth: 16})
//
// Illegal parameters are reported as errors wrapping ErrInvalidSpec, so a
// caller can distinguish bad input from an I/O failure with errors.Is.
//
// # Format Registry
//
// The registry maps format keys (lowercase file extensions) to codecs:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", audio.Codec{Decoder: wav.Decoder{}, Encoder: wav.Encoder{}})
//	dec, ok := registry.Decoder("wav")
//
// A Codec with a nil Encoder registers a decode-only format; lossy inputs
// like MP3 can be read as source material but never written back.
package audio
