package transfer

import (
	"crypto/md5"
	"fmt"
	"io"
	"log"
	"net"
	"sort"
	"strings"

	"github.com/smarty/retrace/contracts"
	"github.com/smarty/retrace/core"
	"github.com/smarty/retrace/shell"
)

type UploadFileSystem interface {
	contracts.FileChecker
	contracts.FileOpener
	contracts.FileCreator
}

// UploadApp runs the pipeline once: validate, generate the manifest, build
// the archive inside the crash directory, then upload it.
type UploadApp struct {
	config contracts.UploadConfig
	stdout io.Writer
	stderr io.Writer

	address     string
	environment contracts.Environment
	directory   contracts.WorkingDirectory
	storage     UploadFileSystem
	runner      contracts.CommandRunner
	dialer      contracts.Dialer
	lister      contracts.ArchiveLister
}

func NewUploadApp(config contracts.UploadConfig, stdout, stderr io.Writer) *UploadApp {
	environment := shell.NewEnvironment()
	return &UploadApp{
		config:      config,
		stdout:      stdout,
		stderr:      stderr,
		address:     net.JoinHostPort(contracts.RemoteHost, contracts.RemotePort),
		environment: environment,
		directory:   environment,
		storage:     shell.NewDiskFileSystem(),
		runner:      shell.NewCommandRunner(),
		dialer:      shell.NewTLSDialer(),
		lister:      shell.NewTarXzArchiveLister(),
	}
}

func (this *UploadApp) Run() int {
	err := core.NewInputValidator(this.environment, this.storage).Validate(this.config)
	if err != nil {
		core.PrintUploadUsage(this.stdout, this.config.Program)
		return core.ValidationExitCode(err)
	}
	crashDirectory := this.config.CrashDirectory()

	if code := this.generateManifest(crashDirectory); code != contracts.ExitSuccess {
		return code
	}

	if err = this.directory.Chdir(crashDirectory); err != nil {
		this.printf("Unable to change directory to %s\n", crashDirectory)
		return contracts.ExitChangeDirectory
	}

	if code := this.buildArchive(); code != contracts.ExitSuccess {
		return code
	}

	body, code := this.readArchive()
	if code != contracts.ExitSuccess {
		return code
	}

	return this.upload(body)
}

func (this *UploadApp) generateManifest(crashDirectory string) int {
	this.printf("Generating packages file... ")
	generator := core.NewManifestGenerator(this.runner, this.storage, this.stderr)
	err := generator.Generate(this.config.Generator, crashDirectory)
	if err != nil {
		if this.config.Strict {
			this.printf("Error\n")
			return contracts.ExitManifestFailed
		}
		log.Println("[WARN]", err)
	}
	this.printf("Done\n")
	return contracts.ExitSuccess
}

func (this *UploadApp) buildArchive() int {
	this.printf("Compressing files into .tar.xz archive... ")
	err := this.writeArchive()
	if err == nil && this.config.Strict {
		err = this.verifyArchive()
	}
	if err != nil {
		if this.config.Strict {
			this.printf("Error\n")
			return contracts.ExitArchiveFailed
		}
		log.Println("[WARN]", err)
	}
	this.printf("Done\n")
	return contracts.ExitSuccess
}

func (this *UploadApp) writeArchive() error {
	file, err := this.storage.Create(contracts.ArchiveFilename)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ArchiveErr, err)
	}
	compressor, err := shell.NewXzCompressor(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", core.ArchiveErr, err)
	}

	builder := core.NewArchiveBuilder(this.storage, shell.NewTarArchiveWriter(compressor), md5.New(), contracts.ArchiveMembers...)
	if this.config.Verbose {
		builder.Verbose()
	}
	err = builder.Build()
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %v", core.ArchiveErr, closeErr)
	}

	if this.config.Verbose {
		for _, item := range builder.Contents() {
			log.Printf("Archived \"%s\" (%s, md5 %x).", item.Path, core.HumanFileSize(item.Size), item.MD5Checksum)
		}
	}
	return err
}

func (this *UploadApp) verifyArchive() error {
	names, err := this.lister.List(contracts.ArchiveFilename)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ArchiveErr, err)
	}
	sort.Strings(names)
	expected := append([]string(nil), contracts.ArchiveMembers...)
	sort.Strings(expected)
	if strings.Join(names, "\n") != strings.Join(expected, "\n") {
		return fmt.Errorf("%w: unexpected members %q", core.ArchiveErr, names)
	}
	return nil
}

// readArchive loads the whole archive into memory; the request body is
// never streamed.
func (this *UploadApp) readArchive() ([]byte, int) {
	body, err := this.loadArchive()
	if err == nil {
		return body, contracts.ExitSuccess
	}
	if this.config.Strict {
		this.printf("Unable to read %s\n", contracts.ArchiveFilename)
		return nil, contracts.ExitArchiveUnreadable
	}
	log.Println("[WARN]", err)
	return nil, contracts.ExitSuccess
}

func (this *UploadApp) loadArchive() ([]byte, error) {
	reader, err := this.storage.Open(contracts.ArchiveFilename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	checksum := core.NewChecksumReader(reader, md5.New())
	body, err := io.ReadAll(checksum)
	if err != nil {
		return nil, err
	}
	if this.config.Verbose {
		log.Printf("Uploading \"%s\" (%s, md5 %x).",
			contracts.ArchiveFilename, core.HumanFileSize(checksum.Count()), checksum.Checksum())
	}
	return body, nil
}

func (this *UploadApp) upload(body []byte) int {
	uploader := core.NewRawUploader(this.dialer, this.stdout)
	err := uploader.Upload(contracts.UploadRequest{
		Address:     this.address,
		Host:        contracts.RemoteHost,
		Path:        contracts.RemotePath,
		ContentType: contracts.ArchiveContentType,
		Body:        body,
	})
	if err == nil {
		return contracts.ExitSuccess
	}
	if this.config.Strict {
		return contracts.ExitUploadFailed
	}
	log.Println("[WARN]", err)
	return contracts.ExitSuccess
}

func (this *UploadApp) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(this.stdout, format, args...)
}
