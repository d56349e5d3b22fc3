package transfer

import (
	"io"
	"log"
	"path/filepath"

	"github.com/smarty/retrace/contracts"
	"github.com/smarty/retrace/core"
	"github.com/smarty/retrace/shell"
)

type PackagesFileSystem interface {
	contracts.FileChecker
	core.PackageListerFileSystem
}

// PackagesApp writes the packages manifest for a crash directory to stdout.
type PackagesApp struct {
	config   contracts.PackagesConfig
	stdout   io.Writer
	storage  PackagesFileSystem
	resolver contracts.PackageResolver
}

func NewPackagesApp(config contracts.PackagesConfig, stdout io.Writer) *PackagesApp {
	return &PackagesApp{
		config:   config,
		stdout:   stdout,
		storage:  shell.NewDiskFileSystem(),
		resolver: shell.NewRPMPackageResolver(shell.NewCommandRunner()),
	}
}

func (this *PackagesApp) Run() int {
	if len(this.config.Arguments) != 1 {
		return this.usage(contracts.PackagesExitUsage)
	}
	crashDirectory := this.config.Arguments[0]
	if info, err := this.storage.Stat(crashDirectory); err != nil || !info.Mode().IsDir() {
		return this.usage(contracts.PackagesExitNotDirectory)
	}
	if !this.isRegularFile(filepath.Join(crashDirectory, contracts.CoredumpFilename)) ||
		!this.isRegularFile(filepath.Join(crashDirectory, contracts.PackageFilename)) {
		return this.usage(contracts.PackagesExitMissingFiles)
	}

	listing, err := core.NewPackageLister(this.storage, this.resolver).List(crashDirectory)
	if err != nil {
		log.Println("[ERROR]", err)
		return contracts.PackagesExitUnreadable
	}
	_, err = listing.WriteTo(this.stdout)
	if err != nil {
		log.Println("[ERROR]", err)
		return contracts.PackagesExitUnreadable
	}
	return contracts.ExitSuccess
}

func (this *PackagesApp) isRegularFile(path string) bool {
	info, err := this.storage.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (this *PackagesApp) usage(code int) int {
	core.PrintPackagesUsage(this.stdout, this.config.Program)
	return code
}
