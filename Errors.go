// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import "errors"

// Error taxonomy of the adapter. Failures coming from the backend stream
// itself are propagated to the caller unchanged and are not part of this
// list.
var (
	ErrNotSeekable = errors.New("backend stream is not seekable")
	ErrUnsupported = errors.New("operation not supported by the backend stream")
	ErrOutOfRange  = errors.New("position out of range")
	ErrClosed      = errors.New("stream is closed")
)
