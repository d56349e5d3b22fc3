package shell

import (
	"bytes"
	"io"
	"strings"

	"github.com/smarty/retrace/contracts"
)

// RPMPackageResolver asks the rpm database which installed package owns a path.
type RPMPackageResolver struct {
	runner contracts.CommandRunner
}

func NewRPMPackageResolver(runner contracts.CommandRunner) *RPMPackageResolver {
	return &RPMPackageResolver{runner: runner}
}

func (this *RPMPackageResolver) Resolve(path string) (name string, found bool) {
	output := new(bytes.Buffer)
	err := this.runner.Run(contracts.Command{
		Program: "rpm",
		Args:    []string{"-qf", path},
		Stdout:  output,
		Stderr:  io.Discard,
	})
	if err != nil {
		return "", false
	}
	return strings.TrimRight(output.String(), "\n"), true
}
