package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitsearch/batch"
	"github.com/katalvlaran/bitsearch/bfs"
	"github.com/katalvlaran/bitsearch/dfs"
	"github.com/katalvlaran/bitsearch/instance"
	"github.com/katalvlaran/bitsearch/splitter"
	"github.com/katalvlaran/bitsearch/transition"
)

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle FILE",
		Short: "Sum the fewest button presses over every machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := instance.Load(args[0])
			if err != nil {
				return err
			}
			problems, err := doc.Problems()
			if err != nil {
				return err
			}

			return runSum(a, cmd, "toggle", problems, func(ctx context.Context, i int, p bfs.Problem) (uint64, error) {
				opts := append([]bfs.Option{
					bfs.WithContext(ctx),
					bfs.WithMaxStates(a.cfg.MaxStates),
				}, a.stats.BFSOptions()...)
				res, err := p.Solve(opts...)
				if err != nil {
					return 0, err
				}
				a.log.WithFields(logrus.Fields{"machine": i, "presses": res.Steps, "sequence": res.Ops}).Debug("machine solved")
				return uint64(res.Steps), nil
			})
		},
	}
}

// graphJob pairs a validated network with its start and required markers.
type graphJob struct {
	net      *transition.Network
	start    string
	required []string
}

func newPathsCmd(a *app) *cobra.Command {
	var ignoreMarkers bool
	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "Sum the start-to-terminal paths over every graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := instance.Load(args[0])
			if err != nil {
				return err
			}
			nets, err := doc.Networks()
			if err != nil {
				return err
			}
			jobs := make([]graphJob, len(nets))
			for i, n := range nets {
				jobs[i] = graphJob{net: n, start: doc.Graphs[i].Start, required: doc.Graphs[i].Require}
				if ignoreMarkers {
					jobs[i].required = nil
				}
			}

			return runSum(a, cmd, "paths", jobs, func(ctx context.Context, _ int, j graphJob) (uint64, error) {
				res, err := dfs.CountNamed(j.net, j.start, j.required, a.dfsOptions(ctx)...)
				if err != nil {
					return 0, err
				}
				return res.Count, nil
			})
		},
	}
	cmd.Flags().BoolVar(&ignoreMarkers, "ignore-markers", false, "count every path regardless of require")

	return cmd
}

func newTimelinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timelines FILE",
		Short: "Sum the beam timelines over every manifold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadManifolds(args[0])
			if err != nil {
				return err
			}

			return runSum(a, cmd, "timelines", ms, func(ctx context.Context, _ int, m *splitter.Manifold) (uint64, error) {
				res, err := m.Timelines(a.dfsOptions(ctx)...)
				if err != nil {
					return 0, err
				}
				return res.Count, nil
			})
		},
	}
}

func newSplitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "splits FILE",
		Short: "Sum the splitter hits of the beam front over every manifold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadManifolds(args[0])
			if err != nil {
				return err
			}

			return runSum(a, cmd, "splits", ms, func(ctx context.Context, _ int, m *splitter.Manifold) (uint64, error) {
				n, err := m.Splits(ctx)
				if err != nil {
					return 0, err
				}
				return uint64(n), nil
			})
		},
	}
}

func loadManifolds(path string) ([]*splitter.Manifold, error) {
	doc, err := instance.Load(path)
	if err != nil {
		return nil, err
	}

	return doc.BuildManifolds()
}

// dfsOptions returns the counter options common to every path count.
func (a *app) dfsOptions(ctx context.Context) []dfs.Option {
	return append([]dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithMaxFrames(a.cfg.MaxFrames),
	}, a.stats.DFSOptions()...)
}

// runSum runs solve over items on the batch pool, records each instance in
// the metrics and prints the total.
func runSum[T any](a *app, cmd *cobra.Command, kind string, items []T, solve batch.Solver[T]) error {
	ctx := cmd.Context()
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	observed := func(ctx context.Context, i int, item T) (uint64, error) {
		started := time.Now()
		v, err := solve(ctx, i, item)
		a.stats.ObserveRun(kind, time.Since(started), err)
		return v, err
	}
	rep, err := batch.Sum(ctx, items, observed,
		batch.WithWorkers(a.cfg.Workers),
		batch.WithLogger(a.log),
		batch.WithName(kind),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rep.Total)

	return err
}
