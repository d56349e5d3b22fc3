package contracts

import "io"

type Environment interface {
	LookupEnv(key string) (value string, set bool)
}

type WorkingDirectory interface {
	Chdir(directory string) error
}

type Command struct {
	Program string
	Args    []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// CommandRunner runs a command to completion. A non-zero exit status is
// reported as an error.
type CommandRunner interface {
	Run(command Command) error
}
