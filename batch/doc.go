// Package batch solves many independent instances concurrently and adds up
// their results.
//
// Sum runs a caller-supplied solver on a fixed-size errgroup pool. Each
// instance runs inside its own OpenTelemetry span under a run span, and the
// run is logged through logrus with a uuid run id. The first failing
// instance cancels the rest; its error is returned wrapped with the
// instance index.
//
//	rep, err := batch.Sum(ctx, machines, solveMachine, batch.WithWorkers(8))
//	fmt.Println(rep.Total)
package batch
