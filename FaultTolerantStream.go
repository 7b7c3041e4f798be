// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"io"
)

// ReopenableStream is a backend stream that can be discarded and replaced
// when the transport under it fails (e.g. a remote connection)
type ReopenableStream interface {
	io.ReadSeeker
	io.Closer
}

// StreamFactory opens a fresh backend stream, typically by reconnecting to
// remote storage
type StreamFactory interface {
	OpenStream() (ReopenableStream, error)
}

// FaultTolerantStream proxies a ReopenableStream and transparently replaces
// it on read failures: the broken stream is closed, a new one is opened
// through the factory, repositioned to where the caller was, and the read is
// repeated within the retry policy's budget. io.EOF is benign and never
// retried.
//
// It implements io.ReadSeeker, so it can serve as the backend of a
// ThreadSafeStream; recovery then happens below the per-goroutine cursor
// layer and no logical position is lost.
// Concurrency: not thread safe: at most one request at a time
type FaultTolerantStream struct {
	Factory     StreamFactory
	Impl        ReopenableStream
	Offset      int64 // Position the backend stream is expected to be at
	RetryPolicy *RetryPolicy
}

var _ ReopenableStream = (*FaultTolerantStream)(nil) // ensure FaultTolerantStream implements ReopenableStream

// Opens the initial backend stream through the factory
func NewFaultTolerantStream(factory StreamFactory, retryPolicy *RetryPolicy) (*FaultTolerantStream, error) {
	impl, err := factory.OpenStream()
	if err != nil {
		return nil, err
	}
	return &FaultTolerantStream{Factory: factory, Impl: impl, RetryPolicy: retryPolicy}, nil
}

// Reads a chunk of data, replacing the backend stream on failure
func (this *FaultTolerantStream) Read(buffer []byte) (int, error) {
	op := this.RetryPolicy.StartOperation()
	for {
		nr, err := this.Impl.Read(buffer)
		this.Offset += int64(nr)
		if err == nil || err == io.EOF {
			return nr, err
		}
		if nr > 0 {
			// Partial progress is reported to the caller; if the stream is
			// really broken the error resurfaces on the next call
			return nr, nil
		}
		if !op.ShouldRetry("Read@%d: %s", this.Offset, err) {
			return 0, err
		}
		if this.reopen() != nil {
			return 0, err
		}
	}
}

// Seeks the backend stream and remembers the position for recovery
func (this *FaultTolerantStream) Seek(offset int64, whence int) (int64, error) {
	pos, err := this.Impl.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	this.Offset = pos
	return pos, nil
}

// Closes the current backend stream
func (this *FaultTolerantStream) Close() error {
	return this.Impl.Close()
}

// Replaces the broken backend stream with a freshly-opened one positioned
// at the remembered offset
func (this *FaultTolerantStream) reopen() error {
	this.Impl.Close()
	impl, err := this.Factory.OpenStream()
	if err != nil {
		Error.Printf("FaultTolerantStream: reopen failed: %s", err)
		return err
	}
	if _, err := impl.Seek(this.Offset, io.SeekStart); err != nil {
		Error.Printf("FaultTolerantStream: reseek to %d failed: %s", this.Offset, err)
		impl.Close()
		return err
	}
	this.Impl = impl
	return nil
}
