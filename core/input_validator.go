package core

import (
	"errors"
	"path/filepath"

	"github.com/smarty/retrace/contracts"
)

type InputValidator struct {
	privilege PrivilegeCheck
	storage   contracts.FileChecker
}

func NewInputValidator(environment contracts.Environment, storage contracts.FileChecker) *InputValidator {
	return &InputValidator{
		privilege: NewPrivilegeCheck(environment),
		storage:   storage,
	}
}

// Validate reports the first failed precondition, checked in a fixed order:
// privileges, argument count, crash directory, required files.
func (this *InputValidator) Validate(config contracts.UploadConfig) error {
	if err := this.privilege.Verify(); err != nil {
		return err
	}
	if len(config.Arguments) != 1 {
		return ArgumentCountErr
	}
	directory := config.CrashDirectory()
	if !this.isDirectory(directory) {
		return NotDirectoryErr
	}
	if !this.exists(filepath.Join(directory, contracts.CoredumpFilename)) ||
		!this.exists(filepath.Join(directory, contracts.PackageFilename)) ||
		!this.exists(config.Generator) {
		return MissingFilesErr
	}
	return nil
}

func (this *InputValidator) isDirectory(path string) bool {
	info, err := this.storage.Stat(path)
	return err == nil && info.Mode().IsDir()
}

func (this *InputValidator) exists(path string) bool {
	_, err := this.storage.Stat(path)
	return err == nil
}

// ValidationExitCode maps a validation failure to the process exit code.
func ValidationExitCode(err error) int {
	switch {
	case err == nil:
		return contracts.ExitSuccess
	case errors.Is(err, NotRootErr):
		return contracts.ExitNotRoot
	case errors.Is(err, ArgumentCountErr):
		return contracts.ExitUsage
	case errors.Is(err, NotDirectoryErr):
		return contracts.ExitNotDirectory
	default:
		return contracts.ExitMissingFiles
	}
}

var (
	NotRootErr       = errors.New("not running with root permissions")
	ArgumentCountErr = errors.New("exactly one crash directory must be supplied")
	NotDirectoryErr  = errors.New("crash directory is not a directory")
	MissingFilesErr  = errors.New("crash directory or manifest generator is missing")
)
