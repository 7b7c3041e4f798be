// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"bytes"
	"io"

	"github.com/golang/snappy"
)

// SnappyStream is a read-only seekable backend over snappy-framed data.
// The snappy framing format cannot be seeked, so the content is decoded once
// at open and random access is served from memory. Intended for compressed
// audio assets of moderate size.
type SnappyStream struct {
	*bytes.Reader
}

// Decodes the whole snappy-framed input into a seekable stream
func OpenSnappyStream(compressed io.Reader) (*SnappyStream, error) {
	decoded, err := io.ReadAll(snappy.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	return &SnappyStream{Reader: bytes.NewReader(decoded)}, nil
}
