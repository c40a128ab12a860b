package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitsearch/config"
	"github.com/katalvlaran/bitsearch/telemetry"
)

// app carries what every subcommand needs once the root pre-run has loaded
// the configuration.
type app struct {
	configPath string
	logLevel   string
	workers    int
	trace      bool
	metrics    bool

	cfg      config.Config
	log      *logrus.Logger
	registry *prometheus.Registry
	stats    *telemetry.Metrics
	shutdown func(context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "bitsearch",
		Short:         "Shortest toggle sequences and memoized path counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML run configuration")
	pf.StringVar(&a.logLevel, "log-level", "", "override log_level")
	pf.IntVarP(&a.workers, "workers", "w", 0, "override workers")
	pf.BoolVar(&a.trace, "trace", false, "export spans to stderr")
	pf.BoolVar(&a.metrics, "metrics", false, "log a metrics summary after the run")

	root.AddCommand(
		newToggleCmd(a),
		newPathsCmd(a),
		newTimelinesCmd(a),
		newSplitsCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger, the metrics registry and, if asked, the tracer provider.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	} else if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if flags.Changed("metrics") {
		cfg.Metrics = a.metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	a.log.WithFields(cfg.Fields()).Debug("config")

	a.registry = prometheus.NewRegistry()
	a.stats = telemetry.NewMetrics(a.registry)

	if cfg.Trace {
		if a.shutdown, err = telemetry.SetupTracing(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	return nil
}

// teardown logs the metrics summary and flushes spans. It is a no-op when
// setup did not get that far.
func (a *app) teardown() error {
	if a.log == nil {
		return nil
	}
	if a.cfg.Metrics {
		a.logMetrics()
	}
	if a.shutdown != nil {
		// the run context may already be cancelled; flush regardless
		if err := a.shutdown(context.Background()); err != nil {
			return fmt.Errorf("trace shutdown: %w", err)
		}
	}

	return nil
}

// logMetrics writes one entry per counter series.
func (a *app) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.log.WithError(err).Warn("gather metrics")
		return
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			fields := logrus.Fields{"metric": mf.GetName(), "value": m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				fields[lp.GetName()] = lp.GetValue()
			}
			a.log.WithFields(fields).Info("metric")
		}
	}
}
