// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Decoder reads one encoded audio stream fully into a Buffer.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Encoder writes a Buffer as an encoded stream, quantizing the normalized
// samples at the buffer's bit depth. The writer must support seeking
// because most containers patch up headers after the data is known.
type Encoder interface {
	Encode(w io.WriteSeeker, b *Buffer) error
}

// Codec bundles both directions for one container format. Encoder is nil
// for decode-only formats (lossy source material is never written back).
type Codec struct {
	Decoder Decoder
	Encoder Encoder
}

// Registry for codecs by format key (lowercase file extension without the
// dot, e.g. "wav", "flac").
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = c
}

// Decoder returns the decoder registered for format.
func (r *Registry) Decoder(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	if !ok || c.Decoder == nil {
		return nil, false
	}

	return c.Decoder, true
}

// Encoder returns the encoder registered for format. Decode-only formats
// report false.
func (r *Registry) Encoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	if !ok || c.Encoder == nil {
		return nil, false
	}

	return c.Encoder, true
}

// Formats returns every registered format key, in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}

	return keys
}
