// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile the stream does not start with a valid FLAC header.
	ErrNotFlacFile = errors.New("not a flac file")
	// ErrUnsupportedBitDepth the bit depth cannot be handled.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrUnsupportedChannelCount encoding supports mono and stereo only.
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	// ErrCorruptStream a frame disagrees with the stream info header.
	ErrCorruptStream = errors.New("corrupt flac stream")
)
