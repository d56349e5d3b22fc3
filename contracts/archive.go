package contracts

import (
	"io"
	"time"
)

type ArchiveHeader struct {
	Name       string
	Size       int64
	ModTime    time.Time
	Executable bool
}

type ArchiveWriter interface {
	io.WriteCloser
	WriteHeader(header ArchiveHeader) error
}

type ArchiveLister interface {
	List(path string) ([]string, error)
}

type ArchiveItem struct {
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	MD5Checksum []byte `json:"md5_checksum"`
}
