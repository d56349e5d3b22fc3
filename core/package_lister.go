package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/smarty/retrace/contracts"
)

type PackageListerFileSystem interface {
	contracts.FileOpener
	contracts.FileReader
}

// PackageLister finds the shared libraries referenced by a coredump and the
// installed packages that own them.
type PackageLister struct {
	storage  PackageListerFileSystem
	resolver contracts.PackageResolver
}

func NewPackageLister(storage PackageListerFileSystem, resolver contracts.PackageResolver) *PackageLister {
	return &PackageLister{storage: storage, resolver: resolver}
}

func (this *PackageLister) List(crashDirectory string) (listing PackageListing, err error) {
	listing.CrashPackage, err = this.storage.ReadFile(filepath.Join(crashDirectory, contracts.PackageFilename))
	if err != nil {
		return PackageListing{}, fmt.Errorf("%w: %v", PackageListingErr, err)
	}

	libraries, err := this.libraries(filepath.Join(crashDirectory, contracts.CoredumpFilename))
	if err != nil {
		return PackageListing{}, fmt.Errorf("%w: %v", PackageListingErr, err)
	}

	for _, library := range libraries {
		name, found := this.resolver.Resolve(library)
		if found {
			listing.Packages = appendDistinct(listing.Packages, name)
		} else {
			listing.Unpackaged = appendDistinct(listing.Unpackaged, library)
		}
	}
	return listing, nil
}

func (this *PackageLister) libraries(coredump string) (libraries []string, err error) {
	reader, err := this.storage.Open(coredump)
	if err != nil {
		return nil, err
	}
	defer closeResource(reader)

	found, err := ExtractStrings(reader)
	if err != nil {
		return nil, err
	}
	for _, candidate := range found {
		if sharedLibraryPattern.MatchString(candidate) {
			libraries = appendDistinct(libraries, candidate)
		}
	}
	return libraries, nil
}

func appendDistinct(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

var sharedLibraryPattern = regexp.MustCompile(`^/.*/[^/]+\.so[.0-9]*$`)

type PackageListing struct {
	CrashPackage []byte
	Packages     []string
	Unpackaged   []string
}

// WriteTo renders the manifest: the crashed package, then one owning package
// per line, a blank separator line, then libraries no package claims.
func (this PackageListing) WriteTo(writer io.Writer) (int64, error) {
	buffer := new(bytes.Buffer)
	buffer.Write(this.CrashPackage)
	buffer.WriteString("\n")
	for _, name := range this.Packages {
		buffer.WriteString(name + "\n")
	}
	buffer.WriteString("\n")
	for _, library := range this.Unpackaged {
		buffer.WriteString(library + "\n")
	}
	return buffer.WriteTo(writer)
}

var PackageListingErr = errors.New("unable to list packages")
