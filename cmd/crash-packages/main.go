package main

import (
	"log"
	"os"

	"github.com/smarty/retrace/contracts"
	"github.com/smarty/retrace/transfer"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := contracts.PackagesConfig{Program: os.Args[0], Arguments: os.Args[1:]}
	os.Exit(transfer.NewPackagesApp(config, os.Stdout).Run())
}
