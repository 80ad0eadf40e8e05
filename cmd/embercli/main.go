package main

import (
	"github.com/emberledger/ember/cmd/embercli/cmd"

	// Configures the log formatter.
	_ "github.com/emberledger/ember/common/util"
)

func main() {
	cmd.Execute()
}
