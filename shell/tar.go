package shell

import (
	"archive/tar"
	"io"

	"github.com/smarty/retrace/contracts"
)

// TarArchiveWriter writes a tar stream into a compressor. Closing it
// finishes the tar stream and then the compressor; the destination the
// compressor writes to stays open.
type TarArchiveWriter struct {
	*tar.Writer
	compressor io.WriteCloser
}

func NewTarArchiveWriter(compressor io.WriteCloser) *TarArchiveWriter {
	return &TarArchiveWriter{Writer: tar.NewWriter(compressor), compressor: compressor}
}

func (this *TarArchiveWriter) WriteHeader(header contracts.ArchiveHeader) error {
	return this.Writer.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     header.Name,
		Size:     header.Size,
		ModTime:  header.ModTime,
		Mode:     modeFor(header),
	})
}

func (this *TarArchiveWriter) Close() error {
	err := this.Writer.Close()
	if compressorErr := this.compressor.Close(); err == nil {
		err = compressorErr
	}
	return err
}

func modeFor(header contracts.ArchiveHeader) int64 {
	if header.Executable {
		return 0755
	}
	return 0644
}
