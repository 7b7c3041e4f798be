// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"github.com/colinmarc/hdfs"
)

// HdfsStream exposes an HDFS file as a read-only seekable backend. An HDFS
// read handle is expensive to open, which is the case ThreadSafeStream exists
// for: open one handle and let decoding goroutines share it.
// Concurrency: not thread safe: at most one request at a time
type HdfsStream struct {
	BackendReader *hdfs.FileReader
}

var _ ReopenableStream = (*HdfsStream)(nil) // ensure HdfsStream implements ReopenableStream

// Opens an HDFS file for shared reading
func OpenHdfsStream(client *hdfs.Client, path string) (*HdfsStream, error) {
	reader, err := client.Open(path)
	if err != nil {
		return nil, err
	}
	return &HdfsStream{BackendReader: reader}, nil
}

// Reads a chunk of data
func (this *HdfsStream) Read(buffer []byte) (int, error) {
	return this.BackendReader.Read(buffer)
}

// Seeks to a given position
func (this *HdfsStream) Seek(offset int64, whence int) (int64, error) {
	return this.BackendReader.Seek(offset, whence)
}

// Closes the stream
func (this *HdfsStream) Close() error {
	return this.BackendReader.Close()
}

// HdfsStreamFactory reopens the same HDFS file, for use with
// FaultTolerantStream
type HdfsStreamFactory struct {
	Client *hdfs.Client
	Path   string
}

var _ StreamFactory = (*HdfsStreamFactory)(nil) // ensure HdfsStreamFactory implements StreamFactory

// Opens a fresh read handle to the file
func (this *HdfsStreamFactory) OpenStream() (ReopenableStream, error) {
	return OpenHdfsStream(this.Client, this.Path)
}
