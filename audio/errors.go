// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBuffer = errors.New("invalid audio buffer")
	ErrRange         = errors.New("frame range out of bounds")
	ErrInvalidSpec   = errors.New("invalid spec")
)
