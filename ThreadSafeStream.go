// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// ThreadSafeStream lets many goroutines share one backend stream that is not
// itself safe for concurrent use. Each goroutine gets a private logical
// position; the backend's single physical cursor is repositioned on demand
// under an exclusive I/O lock, so to every caller the stream behaves as if
// it held its own handle.
//
// Two independent lock domains are used and never held together: the cursor
// registry resolves the caller's entry first (releasing its own lock), and
// only then is the I/O lock taken for the backend operation.
//
// The adapter does not own the backend: Close releases the adapter's state
// but leaves the backend open.
type ThreadSafeStream struct {
	seeker io.Seeker // the backend; never nil
	reader io.Reader // backend as reader, nil if it cannot read
	writer io.Writer // backend as writer, nil if it cannot write

	ioLock      sync.Mutex // guards the backend cursor, physicalPos and scratch
	physicalPos int64      // where the backend cursor is right now; -1 when unknown
	scratch     [1]byte    // shared single-byte read buffer, only touched under ioLock

	length   int64 // cached backend length, accessed atomically
	registry cursorRegistry
	stats    StreamStats
	closed   atomic.Bool
}

var _ Stream = (*ThreadSafeStream)(nil) // ensure ThreadSafeStream implements Stream

// Wraps an already-open seekable backend. Fails if the backend refuses a
// probe seek. The backend's current position and length are captured here;
// read/write/truncate/flush capabilities are detected by interface assertion.
func NewThreadSafeStream(backend io.Seeker) (*ThreadSafeStream, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrNotSeekable)
	}
	pos, err := backend.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSeekable, err)
	}
	end, err := backend.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSeekable, err)
	}
	if _, err := backend.Seek(pos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSeekable, err)
	}
	this := &ThreadSafeStream{seeker: backend, physicalPos: pos, length: end}
	this.reader, _ = backend.(io.Reader)
	this.writer, _ = backend.(io.Writer)
	this.registry.stats = &this.stats
	return this, nil
}

// True if the backend supports reading
func (this *ThreadSafeStream) CanRead() bool {
	return this.reader != nil && !this.closed.Load()
}

// True if the backend supports writing
func (this *ThreadSafeStream) CanWrite() bool {
	return this.writer != nil && !this.closed.Load()
}

// True if the backend supports seeking (construction already requires it)
func (this *ThreadSafeStream) CanSeek() bool {
	return !this.closed.Load()
}

// Returns the cached length; no backend call is made
func (this *ThreadSafeStream) Length() int64 {
	return atomic.LoadInt64(&this.length)
}

// Changes the backend length. Owners whose logical position now exceeds the
// new length are not clamped; their next Seek or SetPosition fails instead.
func (this *ThreadSafeStream) SetLength(value int64) error {
	if this.closed.Load() {
		return ErrClosed
	}
	truncater, ok := this.seeker.(Truncater)
	if !ok {
		return fmt.Errorf("%w: SetLength", ErrUnsupported)
	}
	this.ioLock.Lock()
	defer this.ioLock.Unlock()
	if err := truncater.Truncate(value); err != nil {
		return err
	}
	atomic.StoreInt64(&this.length, value)
	return nil
}

// Returns the calling goroutine's logical position
func (this *ThreadSafeStream) Position() (int64, error) {
	if this.closed.Load() {
		return 0, ErrClosed
	}
	return this.registry.resolve(currentOwner()).position, nil
}

// Sets the calling goroutine's logical position
func (this *ThreadSafeStream) SetPosition(value int64) error {
	_, err := this.Seek(value, io.SeekStart)
	return err
}

// Seeks the calling goroutine's logical position. The backend is not touched:
// repositioning happens lazily before the next read or write. The target must
// stay inside [0, Length()]; seeking past the end to extend the stream via a
// later write is not permitted.
func (this *ThreadSafeStream) Seek(offset int64, whence int) (int64, error) {
	if this.closed.Load() {
		return 0, ErrClosed
	}
	cursor := this.registry.resolve(currentOwner())
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = cursor.position + offset
	case io.SeekEnd:
		target = this.Length() + offset
	default:
		return 0, fmt.Errorf("%w: seek whence %d", ErrUnsupported, whence)
	}
	if target < 0 || target > this.Length() {
		return 0, fmt.Errorf("%w: seek target %d, length %d", ErrOutOfRange, target, this.Length())
	}
	cursor.position = target
	return target, nil
}

// Reads a chunk of data at the caller's logical position. Short reads are
// surfaced as-is, never retried here.
func (this *ThreadSafeStream) Read(buffer []byte) (int, error) {
	if this.closed.Load() {
		return 0, ErrClosed
	}
	if this.reader == nil {
		return 0, fmt.Errorf("%w: Read", ErrUnsupported)
	}
	cursor := this.registry.resolve(currentOwner())
	this.ioLock.Lock()
	defer this.ioLock.Unlock()
	if err := this.repositionTo(cursor.position); err != nil {
		return 0, err
	}
	nr, err := this.reader.Read(buffer)
	this.physicalPos += int64(nr)
	cursor.position += int64(nr)
	this.stats.IncrementRead()
	return nr, err
}

// Reads one byte at the caller's logical position; io.EOF marks the end.
// The shared scratch buffer avoids a per-call allocation and is safe only
// because it is mutated while ioLock is held.
func (this *ThreadSafeStream) ReadByte() (byte, error) {
	if this.closed.Load() {
		return 0, ErrClosed
	}
	if this.reader == nil {
		return 0, fmt.Errorf("%w: ReadByte", ErrUnsupported)
	}
	cursor := this.registry.resolve(currentOwner())
	this.ioLock.Lock()
	defer this.ioLock.Unlock()
	if err := this.repositionTo(cursor.position); err != nil {
		return 0, err
	}
	nr, err := this.reader.Read(this.scratch[:])
	this.physicalPos += int64(nr)
	cursor.position += int64(nr)
	this.stats.IncrementRead()
	if nr == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return this.scratch[0], nil
}

// Writes a chunk of data at the caller's logical position and refreshes the
// cached length from the backend (the write may have extended the stream).
func (this *ThreadSafeStream) Write(buffer []byte) (int, error) {
	if this.closed.Load() {
		return 0, ErrClosed
	}
	if this.writer == nil {
		return 0, fmt.Errorf("%w: Write", ErrUnsupported)
	}
	cursor := this.registry.resolve(currentOwner())
	this.ioLock.Lock()
	defer this.ioLock.Unlock()
	if err := this.repositionTo(cursor.position); err != nil {
		return 0, err
	}
	nw, err := this.writer.Write(buffer)
	this.physicalPos += int64(nw)
	cursor.position += int64(nw)
	this.stats.IncrementWrite()
	if lerr := this.refreshLength(); lerr != nil && err == nil {
		err = lerr
	}
	return nw, err
}

// Flushes backend buffers. Owner-agnostic: logical cursors are untouched.
func (this *ThreadSafeStream) Flush() error {
	if this.closed.Load() {
		return ErrClosed
	}
	this.ioLock.Lock()
	defer this.ioLock.Unlock()
	switch backend := this.seeker.(type) {
	case Syncer:
		return backend.Sync()
	case Flusher:
		return backend.Flush()
	default:
		return nil
	}
}

// Releases the adapter's cursors. The backend stays open; closing it remains
// its creator's responsibility.
func (this *ThreadSafeStream) Close() error {
	if this.closed.Swap(true) {
		return nil
	}
	this.registry.clear()
	return nil
}

// Returns runtime counters for diagnostics and tests
func (this *ThreadSafeStream) Stats() *StreamStats {
	return &this.stats
}

// Moves the backend cursor to the given logical position if it is not
// already there. Caller must hold ioLock.
func (this *ThreadSafeStream) repositionTo(position int64) error {
	if this.physicalPos == position {
		return nil
	}
	actual, err := this.seeker.Seek(position, io.SeekStart)
	if err != nil {
		this.physicalPos = -1 // unknown, force a reseek on the next operation
		return err
	}
	this.physicalPos = actual
	this.stats.IncrementPhysicalSeek()
	if actual != position {
		return errors.New("backend seeked to a different position than requested")
	}
	return nil
}

// Re-reads the backend length after a write may have extended it.
// Caller must hold ioLock.
func (this *ThreadSafeStream) refreshLength() error {
	end, err := this.seeker.Seek(0, io.SeekEnd)
	if err != nil {
		this.physicalPos = -1
		return err
	}
	this.physicalPos = end
	atomic.StoreInt64(&this.length, end)
	return nil
}
