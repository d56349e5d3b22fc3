package contracts

const (
	CoredumpFilename = "coredump"
	PackageFilename  = "package"
	PackagesFilename = "packages"
	ArchiveFilename  = "crash.tar.xz"

	ArchiveContentType = "application/x-xz-compressed-tar"
	DefaultGenerator   = "./packages.py"

	HomeVariable   = "HOME"
	PrivilegedHome = "/root"
)

// The collection endpoint is fixed.
const (
	RemoteHost = "denisa.expresmu.sk"
	RemotePort = "443"
	RemotePath = "/create"
)

// ArchiveMembers lists, in order, the crash directory files placed in the archive.
var ArchiveMembers = []string{CoredumpFilename, PackagesFilename}

const (
	ExitSuccess           = 0
	ExitNotRoot           = 1
	ExitUsage             = 2
	ExitNotDirectory      = 3
	ExitMissingFiles      = 4
	ExitChangeDirectory   = 5
	ExitManifestFailed    = 6
	ExitArchiveFailed     = 7
	ExitArchiveUnreadable = 8
	ExitUploadFailed      = 9
)

const (
	PackagesExitUsage        = 1
	PackagesExitNotDirectory = 2
	PackagesExitMissingFiles = 3
	PackagesExitUnreadable   = 4
)
