package core

import (
	"hash"
	"io"
)

// ChecksumReader hashes and counts everything read through it.
type ChecksumReader struct {
	reader io.Reader
	hasher hash.Hash
	count  int64
}

func NewChecksumReader(source io.Reader, target hash.Hash) *ChecksumReader {
	return &ChecksumReader{reader: source, hasher: target}
}

func (this *ChecksumReader) Read(buffer []byte) (int, error) {
	count, err := this.reader.Read(buffer)
	_, _ = this.hasher.Write(buffer[0:count])
	this.count += int64(count)
	return count, err
}

func (this *ChecksumReader) Checksum() []byte { return this.hasher.Sum(nil) }
func (this *ChecksumReader) Count() int64     { return this.count }
