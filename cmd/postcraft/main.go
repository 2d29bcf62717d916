package main

import (
	"errors"
	"fmt"
	"os"

	"postcraft/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, exit.Msg)
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
