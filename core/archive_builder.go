package core

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"log"
	"path/filepath"

	"github.com/smarty/retrace/contracts"
)

type ArchiveBuilderFileSystem interface {
	contracts.FileChecker
	contracts.FileOpener
}

// ArchiveBuilder writes the named files, and only those, into an archive
// under their base names, inventorying each one as it goes.
type ArchiveBuilder struct {
	storage  ArchiveBuilderFileSystem
	archive  contracts.ArchiveWriter
	hasher   hash.Hash
	members  []string
	contents []contracts.ArchiveItem
	verbose  bool
}

func NewArchiveBuilder(storage ArchiveBuilderFileSystem, archive contracts.ArchiveWriter, hasher hash.Hash, members ...string) *ArchiveBuilder {
	return &ArchiveBuilder{
		storage: storage,
		archive: archive,
		hasher:  hasher,
		members: members,
	}
}

func (this *ArchiveBuilder) Verbose() *ArchiveBuilder {
	this.verbose = true
	return this
}

func (this *ArchiveBuilder) Build() error {
	for _, member := range this.members {
		err := this.add(member)
		if err != nil {
			_ = this.archive.Close()
			return err
		}
	}
	return this.archive.Close()
}

func (this *ArchiveBuilder) add(path string) error {
	file, err := this.storage.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ArchiveErr, err)
	}
	if file.Mode().IsDir() {
		return fmt.Errorf("%w: \"%s\" is a directory", ArchiveErr, path)
	}
	if this.verbose {
		log.Printf("Adding \"%s\" to archive.", path)
	}

	header := contracts.ArchiveHeader{
		Name:       filepath.Base(path),
		Size:       file.Size(),
		ModTime:    file.ModTime(),
		Executable: contracts.IsExecutable(file.Mode()),
	}
	err = this.archive.WriteHeader(header)
	if err != nil {
		return err
	}
	err = this.archiveContents(path)
	if err != nil {
		return err
	}
	this.contents = append(this.contents, this.buildInventoryEntry(header))
	return nil
}

func (this *ArchiveBuilder) archiveContents(path string) error {
	reader, err := this.storage.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ArchiveErr, err)
	}
	defer closeResource(reader)
	_, err = io.Copy(io.MultiWriter(this.hasher, this.archive), reader)
	return err
}

func (this *ArchiveBuilder) buildInventoryEntry(header contracts.ArchiveHeader) contracts.ArchiveItem {
	defer this.hasher.Reset()
	return contracts.ArchiveItem{
		Path:        header.Name,
		Size:        header.Size,
		MD5Checksum: this.hasher.Sum(nil),
	}
}

func (this *ArchiveBuilder) Contents() []contracts.ArchiveItem {
	return this.contents
}

func closeResource(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

var ArchiveErr = errors.New("archive creation failed")
