// SPDX-License-Identifier: EPL-2.0

package samplekit

import "errors"

var (
	// ErrUnsupportedFormat no bundled codec matches the file extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrDecodeOnly the format can be read but not written.
	ErrDecodeOnly = errors.New("format is decode only")
)
