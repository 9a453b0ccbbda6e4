// Command kstar is the CLI front end for the engine, grounded on
// AleutianLocal's cobra-based cmd/aleutian: a root command picks a built-in
// demo task by name, reads an optional run-configuration YAML file, runs
// the engine, and prints or dumps the plans it finds.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kstar-go/kstar"
	"github.com/kstar-go/kstar/config"
	"github.com/kstar-go/kstar/examples/toytask"
)

var (
	configPath string
	taskName   string
	kFlag      int
	metricsAddr string

	rootCmd = &cobra.Command{
		Use:   "kstar",
		Short: "Enumerate the k least-cost plans of a planning task",
		Run:   runKStar,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a run configuration YAML file")
	rootCmd.Flags().StringVar(&taskName, "task", "chain", "built-in demo task: chain, parallel, diamond, cycle, unsolvable, lattice")
	rootCmd.Flags().IntVar(&kFlag, "k", 1, "number of plans to enumerate (overridden by --config if set)")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address instead of exiting after the run")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("kstar: command failed", "error", err)
		os.Exit(1)
	}
}

func builtinTask(name string) (*toytask.GraphTask, error) {
	switch name {
	case "chain":
		return toytask.Chain(), nil
	case "parallel":
		return toytask.ParallelEdges(), nil
	case "diamond":
		return toytask.Diamond(), nil
	case "cycle":
		return toytask.CycleReparenting(), nil
	case "unsolvable":
		return toytask.Unsolvable(), nil
	case "lattice":
		return toytask.Lattice(6), nil
	default:
		return nil, fmt.Errorf("kstar: unknown built-in task %q", name)
	}
}

func runKStar(cmd *cobra.Command, args []string) {
	runID := uuid.New()
	log := slog.With("run_id", runID.String())

	task, err := builtinTask(taskName)
	if err != nil {
		log.Error("failed to build task", "error", err)
		os.Exit(1)
	}

	opts := []kstar.Option{kstar.WithK(kFlag)}
	var sink kstar.PlanSink = kstar.NopSink{}

	if configPath != "" {
		file, err := config.Load(configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		opts = file.Options()
		if file.DumpPlans && file.DumpPath != "" {
			fileSink, err := kstar.NewJSONFileSink(file.DumpPath)
			if err != nil {
				log.Error("failed to open plan dump", "error", err)
				os.Exit(1)
			}
			defer fileSink.Close()
			sink = fileSink
		}
	}

	engine := kstar.NewEngine(task, toytask.ZeroHeuristic{}, sink, opts...)
	result, err := engine.Run()
	if err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}

	log.Info("run finished", "status", result.Status.String(), "plans", len(result.Plans))
	for _, plan := range result.Plans {
		names := make([]string, len(plan.States))
		for i, s := range plan.States {
			names[i] = task.Name(s)
		}
		fmt.Printf("#%d cost=%d path=%v\n", plan.Index, plan.Cost, names)
	}

	if metricsAddr != "" {
		log.Info("serving metrics", "addr", metricsAddr)
		http.Handle("/metrics", promhttp.HandlerFor(engine.Stats().Registry(), promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			log.Error("metrics server failed", "error", err)
			os.Exit(1)
		}
	}
}
