// SPDX-License-Identifier: EPL-2.0

/*
Package flac decodes and encodes FLAC streams.

Parsing and bit-level framing are handled by github.com/mewkiz/flac; this
package converts between its frame representation and [audio.Buffer].

# Decoding

Decoding walks the stream frame by frame and scales the decoded integer
samples into float range:

	fl, err := os.Open("kick.flac")
	if err != nil {
		return err
	}
	defer fl.Close()

	buf, err := flac.Decoder{}.Decode(fl)
	if err != nil {
		return err
	}

Any bit depth the buffer accepts (16, 24 or 32) decodes; other depths
return [ErrUnsupportedBitDepth].

# Encoding

Encoding stores samples as verbatim subframes in fixed 4096-sample
blocks. The output is valid, lossless FLAC, just without the prediction
stages a dedicated encoder would apply, so files come out larger than
reference-encoded ones.

	out, err := os.Create("kick.flac")
	if err != nil {
		return err
	}
	defer out.Close()

	if err := (flac.Encoder{}).Encode(out, buf); err != nil {
		return err
	}

Encoding is limited to 16 and 24 bit mono or stereo. 32-bit buffers must
be converted down first; see the audio package's Convert.
*/
package flac
