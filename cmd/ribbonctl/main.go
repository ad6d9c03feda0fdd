// Command ribbonctl builds ribbon declarations outside a host application.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/ribbon/cmd/ribbonctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
