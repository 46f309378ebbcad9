// SPDX-License-Identifier: EPL-2.0

package samplekit_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/samplekit"
	"github.com/ik5/samplekit/internal/audiotest"
)

// Example_roundTrip demonstrates the extension-driven file functions:
// encode a buffer to WAV, then read it back.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "samplekit")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")

	buf := audiotest.QuantizedSine(44100, 1, 44100, 16, 440)
	if err := samplekit.EncodeFile(path, buf); err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := samplekit.DecodeFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Rate: %d Hz\n", decoded.SampleRate())
	fmt.Printf("Channels: %d\n", decoded.NumChannels())
	fmt.Printf("Duration: %s\n", decoded.Duration())
	// Output:
	// Rate: 44100 Hz
	// Channels: 1
	// Duration: 1s
}

// Example_formatKey shows how file paths map onto registry keys.
func Example_formatKey() {
	fmt.Println(samplekit.FormatKey("Kick L.WAV"))
	fmt.Println(samplekit.FormatKey("loops/break.flac"))
	fmt.Println(samplekit.FormatKey("README") == "")
	// Output:
	// wav
	// flac
	// true
}

// Example_decodeOnly shows that lossy formats cannot be written.
func Example_decodeOnly() {
	buf := audiotest.Silence(44100, 1, 100)

	err := samplekit.EncodeFile("out.mp3", buf)
	fmt.Println(errors.Is(err, samplekit.ErrDecodeOnly))
	// Output: true
}

// Example_defaultRegistry lists the bundled formats.
func Example_defaultRegistry() {
	formats := samplekit.DefaultRegistry().Formats()
	slices.Sort(formats)

	fmt.Println(strings.Join(formats, " "))
	// Output: aif aiff flac mp3 ogg wav
}
