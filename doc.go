// SPDX-License-Identifier: EPL-2.0

// Package samplekit prepares audio samples for hardware and software
// samplers.
//
// This package is the high-level entry point: it bundles every codec into
// a default registry and reads or writes whole files by extension. The
// processing itself lives in the audio subpackage, which trims silent
// tails, slices loops into beat-length segments, normalizes peaks,
// converts sample rates and bit depths, and joins mono pairs into stereo.
//
// # Supported Formats
//
// The default registry reads and writes:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//   - FLAC (16/24-bit) via formats/flac
//
// and reads, but never writes:
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
// The simplest chain reads a file, processes it, and writes it back out:
//
//	buf, err := samplekit.DecodeFile("kick L.wav")
//	if err != nil {
//		return err
//	}
//
//	trimmed, err := audio.TrimTail(buf, audio.TrimSpec{
//		ThresholdDB:    -60,
//		MinTailSeconds: 0.5,
//	})
//	if err != nil {
//		return err
//	}
//
//	err = samplekit.EncodeFile("kick_trimmed.wav", trimmed)
//
// File extensions pick the codec: ".wav", ".aiff", ".aif", ".flac",
// ".mp3" and ".ogg" are recognized, case insensitively. Writing to a
// decode-only extension fails with ErrDecodeOnly.
//
// # Processing
//
// All transforms work on audio.Buffer values and never mutate their
// input, so one decoded buffer can feed several output files:
//
//	loop, _ := samplekit.DecodeFile("break.wav")
//
//	slices, _ := audio.SliceBeats(loop, audio.SliceSpec{BPM: 174, BarsPerSlice: 1})
//	for i, s := range slices {
//		normalized, _ := audio.Normalize(s, audio.NormalizeSpec{TargetPeakDB: -0.1})
//		_ = samplekit.EncodeFile(fmt.Sprintf("break_%02d.wav", i+1), normalized)
//	}
//
// # Batch Work
//
// The batch subpackage runs a processing function over whole directories
// on a worker pool, pairs "name L"/"name R" mono files for stereo joins,
// and maps sample libraries onto MIDI note names for hardware samplers.
//
// See the individual subpackages for more detailed documentation.
package samplekit
