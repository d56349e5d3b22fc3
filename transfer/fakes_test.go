package transfer

import (
	"io"
	"path/filepath"

	"github.com/smarty/retrace/contracts"
	"github.com/smarty/retrace/shell"
)

type FakeEnvironment struct {
	values map[string]string
}

func NewFakeEnvironment(home string) *FakeEnvironment {
	return &FakeEnvironment{values: map[string]string{contracts.HomeVariable: home}}
}

func (this *FakeEnvironment) LookupEnv(key string) (string, bool) {
	value, found := this.values[key]
	return value, found
}

///////////////////////////////////////////////////////////////

// FakeWorkingDirectory records the directory instead of changing the
// working directory of the test process.
type FakeWorkingDirectory struct {
	current string
	err     error
}

func (this *FakeWorkingDirectory) Chdir(directory string) error {
	if this.err != nil {
		return this.err
	}
	this.current = directory
	return nil
}

func (this *FakeWorkingDirectory) resolve(path string) string {
	if filepath.IsAbs(path) || this.current == "" {
		return path
	}
	return filepath.Join(this.current, path)
}

///////////////////////////////////////////////////////////////

// RelativeDiskFileSystem is the real disk, with relative paths resolved
// against the fake working directory.
type RelativeDiskFileSystem struct {
	disk      *shell.DiskFileSystem
	directory *FakeWorkingDirectory
	errOpen   map[string]error
}

func NewRelativeDiskFileSystem(directory *FakeWorkingDirectory) *RelativeDiskFileSystem {
	return &RelativeDiskFileSystem{
		disk:      shell.NewDiskFileSystem(),
		directory: directory,
		errOpen:   make(map[string]error),
	}
}

func (this *RelativeDiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	return this.disk.Stat(this.directory.resolve(path))
}
func (this *RelativeDiskFileSystem) Open(path string) (io.ReadCloser, error) {
	if err := this.errOpen[path]; err != nil {
		return nil, err
	}
	return this.disk.Open(this.directory.resolve(path))
}
func (this *RelativeDiskFileSystem) Create(path string) (io.WriteCloser, error) {
	return this.disk.Create(this.directory.resolve(path))
}
func (this *RelativeDiskFileSystem) ReadFile(path string) ([]byte, error) {
	return this.disk.ReadFile(this.directory.resolve(path))
}

///////////////////////////////////////////////////////////////

type RelativeArchiveLister struct {
	lister    *shell.TarXzArchiveLister
	directory *FakeWorkingDirectory
}

func (this *RelativeArchiveLister) List(path string) ([]string, error) {
	return this.lister.List(this.directory.resolve(path))
}

///////////////////////////////////////////////////////////////

type FakeResolver struct {
	owners map[string]string
}

func (this *FakeResolver) Resolve(path string) (string, bool) {
	name, found := this.owners[path]
	return name, found
}
