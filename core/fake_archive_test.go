package core

import (
	"errors"

	"github.com/smarty/retrace/contracts"
)

type ArchiveItem struct {
	contracts.ArchiveHeader
	contents []byte
}

type FakeArchiveWriter struct {
	items       []*ArchiveItem
	current     *ArchiveItem
	closed      bool
	headerError error
	writeError  error
	closedError error
}

func NewFakeArchiveWriter() *FakeArchiveWriter { return &FakeArchiveWriter{} }
func (this *FakeArchiveWriter) WriteHeader(header contracts.ArchiveHeader) error {
	if this.closed {
		return nil
	}
	this.current = &ArchiveItem{ArchiveHeader: header}
	this.items = append(this.items, this.current)
	return this.headerError
}
func (this *FakeArchiveWriter) Write(p []byte) (int, error) {
	this.current.contents = append(this.current.contents, p...)
	return len(p), this.writeError
}
func (this *FakeArchiveWriter) Close() error {
	this.closed = true
	return this.closedError
}

/////////////////////////

type FakeHasher struct{ sum []byte }

func NewFakeHasher() *FakeHasher { return &FakeHasher{} }
func (this *FakeHasher) Write(p []byte) (n int, err error) {
	this.sum = append(this.sum, p...)
	this.sum = append(this.sum, []byte(" [HASHED]")...)
	return len(p), nil
}
func (this *FakeHasher) Reset()              { this.sum = nil }
func (this *FakeHasher) Sum(b []byte) []byte { return this.sum }
func (this *FakeHasher) BlockSize() int      { panic("implement me") }
func (this *FakeHasher) Size() int           { panic("implement me") }

/////////////////////////

type FakeEnvironment map[string]string

func (this FakeEnvironment) LookupEnv(key string) (value string, set bool) {
	value, set = this[key]
	return value, set
}

/////////////////////////

type FakeRunner struct {
	commands []contracts.Command
	output   string
	err      error
}

func (this *FakeRunner) Run(command contracts.Command) error {
	this.commands = append(this.commands, command)
	if command.Stdout != nil {
		_, _ = command.Stdout.Write([]byte(this.output))
	}
	return this.err
}

var (
	headerErr = errors.New("header error")
	writeErr  = errors.New("write error")
	closeErr  = errors.New("close error")
	anError   = errors.New("this is an error")
)
