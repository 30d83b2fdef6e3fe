package main

import (
	"os"

	"github.com/kk-code-lab/pathtrack/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
