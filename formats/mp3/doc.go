// SPDX-License-Identifier: EPL-2.0

/*
Package mp3 decodes MP3 streams.

Decompression is handled by github.com/hajimehoshi/go-mp3. Whatever the
source layout, go-mp3 emits 16-bit stereo PCM, so decoded buffers are
always two channels at 16 bit; mono MP3s come back with identical left
and right channels.

	fl, err := os.Open("loop.mp3")
	if err != nil {
		return err
	}
	defer fl.Close()

	buf, err := mp3.Decoder{}.Decode(fl)
	if err != nil {
		return err
	}

There is no encoder. MP3 is a lossy delivery format; rendering results
back into it would throw away the precision the processing chain worked
to keep, so files can be read from MP3 but must be written as WAV, AIFF
or FLAC.
*/
package mp3
