package core

import (
	"fmt"
	"io"
)

func PrintUploadUsage(writer io.Writer, program string) {
	_, _ = fmt.Fprintf(writer, "Usage: %s crash_directory\n"+
		"    Crash directory must contain coredump and package files.\n"+
		"    You must run the script with root permissions.\n", program)
}

func PrintPackagesUsage(writer io.Writer, program string) {
	_, _ = fmt.Fprintf(writer, "Usage: %s crash_directory\n"+
		"    Crash directory must contain coredump and package files.\n", program)
}
