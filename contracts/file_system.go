package contracts

import (
	"io"
	"os"
	"time"
)

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type FileCreator interface {
	Create(path string) (io.WriteCloser, error)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileInfo interface {
	Path() string
	Size() int64
	ModTime() time.Time
	Mode() os.FileMode
}

func IsExecutable(mode os.FileMode) bool {
	return mode.Perm()&0111 > 0
}
