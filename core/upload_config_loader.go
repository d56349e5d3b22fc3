package core

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/smarty/retrace/contracts"
)

type UploadConfigLoader struct {
	stdout io.Writer
}

func NewUploadConfigLoader(stdout io.Writer) *UploadConfigLoader {
	return &UploadConfigLoader{stdout: stdout}
}

// LoadConfig parses flags only. Positional arguments are kept as given so that
// their count is judged by the InputValidator, after the privilege check.
func (this *UploadConfigLoader) LoadConfig(program string, args []string) (config contracts.UploadConfig, err error) {
	flags := flag.NewFlagSet(program, flag.ContinueOnError)
	flags.SetOutput(this.stdout)
	flags.StringVar(&config.Generator,
		"generator",
		contracts.DefaultGenerator,
		"Path to the program that writes the packages manifest for a crash directory.",
	)
	flags.BoolVar(&config.Strict,
		"strict",
		false,
		"When set, abort with a dedicated exit code when any step after validation fails.",
	)
	flags.BoolVar(&config.Verbose,
		"verbose",
		false,
		"When set, log the archive inventory and checksums to stderr.",
	)
	flags.Usage = func() {
		PrintUploadUsage(this.stdout, program)
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(this.stdout, `
exit code 0: success (or connection failure without -strict)
exit code 1: not running with root permissions
exit code 2: wrong number of arguments
exit code 3: crash directory is not a directory
exit code 4: coredump, package or manifest generator missing
exit code 5: unable to change into the crash directory
exit code 6-9 (-strict only): manifest, archive, archive read, upload failure`)
	}

	err = flags.Parse(args)
	if err != nil {
		return contracts.UploadConfig{}, err
	}
	if config.Generator == "" {
		return contracts.UploadConfig{}, blankGeneratorErr
	}

	config.Program = program
	config.Arguments = flags.Args()
	return config, nil
}

var blankGeneratorErr = errors.New("generator flag must be populated")
