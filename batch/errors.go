// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrNotEnoughNotes the rename sequence would pass MIDI note 127.
	ErrNotEnoughNotes = errors.New("not enough midi notes available")
	// ErrInvalidNote the start note is outside 0..127.
	ErrInvalidNote = errors.New("invalid midi note")
)
