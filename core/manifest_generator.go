package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/smarty/retrace/contracts"
)

// ManifestGenerator runs the external generator with the crash directory as
// its only argument and captures its output as the directory's packages file.
type ManifestGenerator struct {
	runner  contracts.CommandRunner
	storage contracts.FileCreator
	stderr  io.Writer
}

func NewManifestGenerator(runner contracts.CommandRunner, storage contracts.FileCreator, stderr io.Writer) *ManifestGenerator {
	return &ManifestGenerator{runner: runner, storage: storage, stderr: stderr}
}

func (this *ManifestGenerator) Generate(generator, crashDirectory string) (err error) {
	target, err := this.storage.Create(filepath.Join(crashDirectory, contracts.PackagesFilename))
	if err != nil {
		return fmt.Errorf("%w: %v", ManifestErr, err)
	}
	defer func() {
		if closeErr := target.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: %v", ManifestErr, closeErr)
		}
	}()

	err = this.runner.Run(contracts.Command{
		Program: generator,
		Args:    []string{crashDirectory},
		Stdout:  target,
		Stderr:  this.stderr,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ManifestErr, generator, err)
	}
	return nil
}

var ManifestErr = errors.New("manifest generation failed")
