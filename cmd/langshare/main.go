package main

import (
	"fmt"
	"os"

	"langshare/internal/app"
	"langshare/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(app.NewLanguageService).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
