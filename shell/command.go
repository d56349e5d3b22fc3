package shell

import (
	"os/exec"

	"github.com/smarty/retrace/contracts"
)

type CommandRunner struct{}

func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

func (this *CommandRunner) Run(command contracts.Command) error {
	process := exec.Command(command.Program, command.Args...)
	process.Stdout = command.Stdout
	process.Stderr = command.Stderr
	return process.Run()
}
