package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/smarty/retrace/contracts"
	"github.com/smarty/retrace/core"
	"github.com/smarty/retrace/transfer"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config, err := core.NewUploadConfigLoader(os.Stdout).LoadConfig(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(contracts.ExitSuccess)
	}
	if err != nil {
		log.Println("[ERROR]", err)
		os.Exit(contracts.ExitUsage)
	}
	if config.Verbose {
		log.Printf("crash-upload [%s]", ldflagsSoftwareVersion)
	}
	os.Exit(transfer.NewUploadApp(config, os.Stdout, os.Stderr).Run())
}

var ldflagsSoftwareVersion = "debug"
