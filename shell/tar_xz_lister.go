package shell

import (
	"github.com/mholt/archiver"
)

// TarXzArchiveLister names the members of an existing .tar.xz file.
type TarXzArchiveLister struct{}

func NewTarXzArchiveLister() *TarXzArchiveLister {
	return &TarXzArchiveLister{}
}

func (this *TarXzArchiveLister) List(path string) (names []string, err error) {
	err = archiver.NewTarXz().Walk(path, func(file archiver.File) error {
		names = append(names, file.Name())
		return nil
	})
	return names, err
}
