// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads and writes integer PCM WAV files at 16, 24 and 32
// bits, mono or stereo, at any sample rate. Parsing and header handling
// are delegated to github.com/go-audio/wav; this package converts between
// its integer buffers and the normalized float32 buffers the rest of the
// module processes.
//
// # Decoding
//
//	file, _ := os.Open("kick.wav")
//	buf, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder reads the whole stream and returns an audio.Buffer with
// samples normalized to [-1.0, 1.0]. Compressed WAV variants and float
// PCM are rejected with ErrOnlyPCMSupported.
//
// # Encoding
//
//	file, _ := os.Create("kick_trimmed.wav")
//	err := wav.Encoder{}.Encode(file, buf)
//
// The encoder quantizes at the buffer's bit depth, rounding to nearest
// and clamping at full scale. The writer must support seeking because the
// RIFF sizes are written back once the data chunk is complete.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCMSupported: the file is WAV but not integer PCM
//   - ErrUnsupportedBitDepth: integer PCM at a depth other than 16/24/32
//
// Example:
//
//	buf, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
