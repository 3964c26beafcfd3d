package main

import (
	"os"

	"github.com/named-data/ndnx/cmd"
)

func main() {
	if err := cmd.CmdNDNx.Execute(); err != nil {
		os.Exit(1)
	}
}
