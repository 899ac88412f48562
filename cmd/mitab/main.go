// 14 Oct 2026
package main

import (
	"os"

	"github.com/andrew-torda/mitab/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
