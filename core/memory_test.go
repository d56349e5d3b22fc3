package core

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/smarty/retrace/contracts"
)

type inMemoryFileSystem struct {
	fileSystem map[string]*file
	errOpen    map[string]error
	errCreate  map[string]error
}

func newInMemoryFileSystem() *inMemoryFileSystem {
	return &inMemoryFileSystem{
		fileSystem: make(map[string]*file),
		errOpen:    make(map[string]error),
		errCreate:  make(map[string]error),
	}
}

func (this *inMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	file, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return file, nil
}

func (this *inMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	if err := this.errOpen[path]; err != nil {
		return nil, err
	}
	file, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(file.contents)), nil
}

func (this *inMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	if err := this.errCreate[path]; err != nil {
		return nil, err
	}
	this.WriteFile(path, nil)
	return this.fileSystem[path], nil
}

func (this *inMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	file, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return file.contents, nil
}

func (this *inMemoryFileSystem) WriteFile(path string, content []byte) {
	this.fileSystem[path] = &file{
		path:     path,
		contents: content,
		mod:      InMemoryModTime,
		mode:     0644,
	}
}

func (this *inMemoryFileSystem) MakeDirectory(path string) {
	this.fileSystem[path] = &file{
		path: path,
		mod:  InMemoryModTime,
		mode: os.ModeDir | 0755,
	}
}

func (this *inMemoryFileSystem) Chmod(path string, mode os.FileMode) {
	this.fileSystem[path].mode = mode
}

/////////////////////////////////////////////////

type file struct {
	path     string
	contents []byte
	mod      time.Time
	mode     os.FileMode
	closed   bool
}

func (this *file) Write(p []byte) (n int, err error) {
	this.contents = append(this.contents, p...)
	return len(p), nil
}

var InMemoryModTime = time.Date(2010, time.October, 18, 12, 0, 0, 0, time.UTC)

func (this *file) Close() error       { this.closed = true; return nil }
func (this *file) ModTime() time.Time { return this.mod }
func (this *file) Path() string       { return this.path }
func (this *file) Size() int64        { return int64(len(this.contents)) }
func (this *file) Mode() os.FileMode  { return this.mode }
