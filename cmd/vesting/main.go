// Binary vesting is the command line client of the governance vesting addin.
package main

import (
	"os"

	"governance-addins-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
