package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/eriklarko/boolean-algebra/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// the outcome of these has already been printed
		if !errors.Is(err, cli.ErrInequivalent) && !errors.Is(err, cli.ErrInvalidStep) {
			slog.Error(err.Error())
		}
		os.Exit(1)
	}
}
