// SPDX-License-Identifier: EPL-2.0

package samplekit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/formats/aiff"
	"github.com/ik5/samplekit/formats/flac"
	"github.com/ik5/samplekit/formats/mp3"
	"github.com/ik5/samplekit/formats/vorbis"
	"github.com/ik5/samplekit/formats/wav"
)

// DefaultRegistry builds a registry holding every bundled codec: WAV,
// AIFF and FLAC both ways, MP3 and Ogg Vorbis decode only.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", audio.Codec{Decoder: wav.Decoder{}, Encoder: wav.Encoder{}})
	reg.Register("aiff", audio.Codec{Decoder: aiff.Decoder{}, Encoder: aiff.Encoder{}})
	reg.Register("aif", audio.Codec{Decoder: aiff.Decoder{}, Encoder: aiff.Encoder{}})
	reg.Register("flac", audio.Codec{Decoder: flac.Decoder{}, Encoder: flac.Encoder{}})
	reg.Register("mp3", audio.Codec{Decoder: mp3.Decoder{}})
	reg.Register("ogg", audio.Codec{Decoder: vorbis.Decoder{}})

	return reg
}

var defaultRegistry = sync.OnceValue(DefaultRegistry)

// FormatKey maps a file path to its registry key, the lowercased
// extension without the dot. Paths without an extension map to "".
func FormatKey(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeFile reads a whole audio file into a buffer using the bundled
// codec matching its extension.
func DecodeFile(path string) (*audio.Buffer, error) {
	dec, ok := defaultRegistry().Decoder(FormatKey(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, FormatKey(path))
	}

	fl, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fl.Close()

	buf, err := dec.Decode(fl)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return buf, nil
}

// EncodeFile writes buf to path using the bundled codec matching its
// extension. Lossy formats decode but do not encode; asking for one
// returns ErrDecodeOnly.
func EncodeFile(path string, buf *audio.Buffer) error {
	key := FormatKey(path)

	enc, ok := defaultRegistry().Encoder(key)
	if !ok {
		if _, decodable := defaultRegistry().Decoder(key); decodable {
			return fmt.Errorf("%w: %q", ErrDecodeOnly, key)
		}

		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, key)
	}

	fl, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := enc.Encode(fl, buf); err != nil {
		fl.Close()

		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := fl.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
