// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

// Stream is the stream-like contract consumed by the container/decoder layers.
// Position, Seek and the I/O operations are logical: every calling goroutine
// observes a private cursor even when many goroutines share one instance
// (see ThreadSafeStream).
type Stream interface {
	CanRead() bool  // true if the backend supports reading
	CanWrite() bool // true if the backend supports writing
	CanSeek() bool  // true if the backend supports seeking

	Length() int64               // current stream length, served from cache
	SetLength(value int64) error // changes the backend length

	Position() (int64, error)      // the caller's logical position
	SetPosition(value int64) error // shorthand for Seek(value, io.SeekStart)

	Read(buffer []byte) (int, error)  // reads at the caller's logical position
	ReadByte() (byte, error)          // single-byte read, io.EOF marks the end
	Write(buffer []byte) (int, error) // writes at the caller's logical position

	Seek(offset int64, whence int) (int64, error) // whence is io.SeekStart/Current/End

	Flush() error // flushes backend buffers, owner-agnostic
	Close() error // releases the adapter, leaves the backend open
}

// Truncater is the optional backend capability behind SetLength.
// *os.File satisfies it.
type Truncater interface {
	Truncate(size int64) error
}

// Syncer is the optional backend capability behind Flush.
// *os.File satisfies it.
type Syncer interface {
	Sync() error
}

// Flusher is the fallback flushing capability, checked when the backend does
// not implement Syncer.
type Flusher interface {
	Flush() error
}
