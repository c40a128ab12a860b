// Command bitsearch solves typed instance files: toggle machines by
// breadth-first search, and device graphs and beam manifolds by memoized
// path counting. It prints the decimal sum over all instances of a kind.
//
//	bitsearch toggle machines.yaml
//	bitsearch paths --config run.yaml devices.yaml
//	bitsearch timelines --trace manifold.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bitsearch:", err)
		os.Exit(1)
	}
}

// run executes the command line args and tears the run down afterwards,
// whatever the outcome.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if terr := a.teardown(); err == nil {
		err = terr
	}

	return err
}
