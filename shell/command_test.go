package shell

import (
	"bytes"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/smarty/retrace/contracts"
)

func TestCommandRunnerFixture(t *testing.T) {
	gunit.Run(new(CommandRunnerFixture), t)
}

type CommandRunnerFixture struct {
	*gunit.Fixture

	stdout *bytes.Buffer
	stderr *bytes.Buffer
	runner *CommandRunner
}

func (this *CommandRunnerFixture) Setup() {
	this.stdout = new(bytes.Buffer)
	this.stderr = new(bytes.Buffer)
	this.runner = NewCommandRunner()
}

func (this *CommandRunnerFixture) TestOutputStreamsAreWired() {
	err := this.runner.Run(contracts.Command{
		Program: "/bin/sh",
		Args:    []string{"-c", `echo "$0"; echo oops >&2`, "/tmp/crash1"},
		Stdout:  this.stdout,
		Stderr:  this.stderr,
	})

	this.So(err, should.BeNil)
	this.So(this.stdout.String(), should.Equal, "/tmp/crash1\n")
	this.So(this.stderr.String(), should.Equal, "oops\n")
}

func (this *CommandRunnerFixture) TestNonZeroExitIsAnError() {
	err := this.runner.Run(contracts.Command{Program: "/bin/sh", Args: []string{"-c", "exit 3"}})

	this.So(err, should.NotBeNil)
}

func (this *CommandRunnerFixture) TestMissingProgramIsAnError() {
	err := this.runner.Run(contracts.Command{Program: "./no-such-generator"})

	this.So(err, should.NotBeNil)
}
