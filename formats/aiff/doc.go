// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding and encoding.
//
// AIFF is the big-endian cousin of WAV, common in sample libraries that
// passed through macOS tooling at some point. This package reads and
// writes integer PCM at 16, 24 and 32 bits through github.com/go-audio/aiff
// and converts to and from the module's normalized float32 buffers.
//
// # Decoding
//
//	file, _ := os.Open("snare.aif")
//	buf, err := aiff.Decoder{}.Decode(file)
//
// # Encoding
//
//	file, _ := os.Create("snare_trimmed.aif")
//	err := aiff.Encoder{}.Encode(file, buf)
//
// The writer must support seeking; chunk sizes are patched after the
// sound data is written.
package aiff
