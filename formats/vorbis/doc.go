// SPDX-License-Identifier: EPL-2.0

/*
Package vorbis decodes Ogg Vorbis streams.

Decompression is handled by github.com/jfreymuth/oggvorbis. Vorbis is
float native, so samples arrive already in [-1, 1] with no quantization
step; decoded buffers keep the stream's channel count and sample rate
and are tagged as 16 bit for later PCM encoding.

	fl, err := os.Open("pad.ogg")
	if err != nil {
		return err
	}
	defer fl.Close()

	buf, err := vorbis.Decoder{}.Decode(fl)
	if err != nil {
		return err
	}

There is no encoder; like MP3, Vorbis is read only here. Write results
as WAV, AIFF or FLAC instead.
*/
package vorbis
