package main

import (
	"fmt"
	"io"
	"os"
)

const usage = `usage:
  projector validate <catalog.yaml>
  projector project [flags] <kind> <records.json>`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "validate":
		err = runValidate(args[1:], stdout)
	case "project":
		err = runProject(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n%s\n", args[0], usage)
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}
