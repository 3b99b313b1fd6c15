package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
)

// runValidate loads a catalog file and prints a per-kind summary.
func runValidate(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("validate takes exactly one catalog file")
	}

	cat, err := projection.LoadCatalogFile(args[0])
	if err != nil {
		return err
	}

	for _, kind := range projection.Kinds {
		all := cat.Fields(kind, true)
		public := cat.Fields(kind, false)
		fmt.Fprintf(stdout, "%-10s %2d public  %2d privileged\n", kind, len(public), len(all)-len(public))
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}
