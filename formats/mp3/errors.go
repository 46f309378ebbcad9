package mp3

import "errors"

var (
	// ErrNotMp3File no MP3 frame sync could be found in the stream.
	ErrNotMp3File = errors.New("not an mp3 file")
	// ErrTruncatedStream the decoded PCM stream ends mid frame.
	ErrTruncatedStream = errors.New("truncated mp3 stream")
)
