// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotOggFile the stream is not an Ogg Vorbis stream.
var ErrNotOggFile = errors.New("not an ogg vorbis file")
