// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"errors"
	"io"
	"math/rand"
)

// This mock backend serves a virtual file with programmatically-generated
// pseudo-random content where each byte is a deterministic function of its
// offset, so it is easy to verify whether reading a chunk returned the
// correct byte sequence
type MockBackendWithPseudoRandomContent struct {
	Rand      *rand.Rand // if set, reads return random short lengths
	FileSize  int64
	position  int64
	SeekCount int
	ReadCount int
}

// Seeks to a given position
func (this *MockBackendWithPseudoRandomContent) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		this.position = offset
	case io.SeekCurrent:
		this.position += offset
	case io.SeekEnd:
		this.position = this.FileSize + offset
	}
	this.SeekCount++
	return this.position, nil
}

// Reads a chunk into the specified buffer
func (this *MockBackendWithPseudoRandomContent) Read(buffer []byte) (int, error) {
	this.ReadCount++
	if this.position >= this.FileSize {
		return 0, io.EOF
	}
	if len(buffer) == 0 {
		return 0, nil
	}
	// Deciding how many bytes to return
	var nr int
	if this.Rand == nil {
		nr = len(buffer)
	} else {
		nr = this.Rand.Intn(len(buffer)) + 1
	}
	// Adjusting for reads close to the end of the file
	if int64(nr) > this.FileSize-this.position {
		nr = int(this.FileSize - this.position)
	}
	// Programmatically generating data
	for i := 0; i < nr; i++ {
		buffer[i] = generateByteAtOffset(this.position + int64(i))
	}
	this.position += int64(nr)
	return nr, nil
}

// Getting last 8 bits of a sum of remainders of a division to various prime numbers
// this gives us pseudo-random file content which is good enough for testing scenarios
func generateByteAtOffset(o int64) byte {
	return byte(o%7 + o%11 + o%13 + o%127 + o%251 + o%31337 + o%1299709)
}

// memoryBackend is a minimal in-memory read/write/seek backend with truncate
// and sync, standing in for *os.File in tests
type memoryBackend struct {
	data     []byte
	position int64
	Syncs    int
}

func newMemoryBackend(data []byte) *memoryBackend {
	return &memoryBackend{data: data}
}

func (this *memoryBackend) Read(buffer []byte) (int, error) {
	if this.position >= int64(len(this.data)) {
		return 0, io.EOF
	}
	nr := copy(buffer, this.data[this.position:])
	this.position += int64(nr)
	return nr, nil
}

func (this *memoryBackend) Write(buffer []byte) (int, error) {
	end := this.position + int64(len(buffer))
	if end > int64(len(this.data)) {
		grown := make([]byte, end)
		copy(grown, this.data)
		this.data = grown
	}
	nw := copy(this.data[this.position:end], buffer)
	this.position += int64(nw)
	return nw, nil
}

func (this *memoryBackend) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = this.position + offset
	case io.SeekEnd:
		target = int64(len(this.data)) + offset
	default:
		return this.position, errors.New("bad whence")
	}
	if target < 0 {
		return this.position, errors.New("negative seek")
	}
	this.position = target
	return target, nil
}

func (this *memoryBackend) Truncate(size int64) error {
	if size <= int64(len(this.data)) {
		this.data = this.data[:size]
	} else {
		grown := make([]byte, size)
		copy(grown, this.data)
		this.data = grown
	}
	return nil
}

func (this *memoryBackend) Sync() error {
	this.Syncs++
	return nil
}

// unseekableBackend refuses every seek, for construction-error tests
type unseekableBackend struct{}

func (this *unseekableBackend) Read(buffer []byte) (int, error) {
	return 0, io.EOF
}

func (this *unseekableBackend) Seek(offset int64, whence int) (int64, error) {
	return 0, errors.New("seek not supported on this transport")
}
