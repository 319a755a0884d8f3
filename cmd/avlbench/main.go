package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"avltree"
	"avltree/internal/bench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := newRootCmd(os.Stdout, &log).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("avlbench failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, log *zerolog.Logger) *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "avlbench",
		Short:         "Exercise and inspect AVL trees.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return pkgerrors.Wrap(err, "invalid log level")
			}
			*log = log.Level(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error).")
	root.SetOut(out)

	root.AddCommand(runCmd(log), dotCmd(), printCmd())
	return root
}

func runCmd(log *zerolog.Logger) *cobra.Command {
	cfg := bench.DefaultConfig()
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a random insert/delete workload and report the result.",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "Number of operations.")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the random workload.")
	cmd.Flags().Float64Var(&cfg.DeleteRatio, "delete-ratio", cfg.DeleteRatio, "Fraction of operations that are deletes.")
	cmd.Flags().IntVar(&cfg.KeySpace, "key-space", cfg.KeySpace, "Keys are drawn from [0, key-space).")
	cmd.Flags().BoolVar(&cfg.Unbalanced, "unbalanced", cfg.Unbalanced, "Use a plain binary search tree.")
	cmd.Flags().IntVar(&cfg.ReportEvery, "report-every", cfg.ReportEvery, "Log progress every n operations, 0 disables.")
	cmd.Flags().BoolVar(&cfg.Check, "check", cfg.Check, "Verify the tree invariants after the run.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		runner, err := bench.NewRunner(cfg, *log, reg)
		if err != nil {
			return err
		}

		if metricsAddr != "" {
			srv := serveMetrics(metricsAddr, reg, log)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()
		}

		res, err := runner.Run(cmd.Context())
		if err != nil {
			return pkgerrors.Wrap(err, "run failed")
		}

		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		log.Info().
			Str("ops", humanize.Comma(int64(res.Ops))).
			Str("ops_per_sec", humanize.Comma(int64(float64(res.Ops)/res.Duration.Seconds()))).
			Str("size", humanize.Comma(int64(res.Size))).
			Int("height", res.Height).
			Int("rebalances", res.Stats.Rebalances).
			Str("mem_allocs", humanize.Bytes(memStats.Alloc)).
			Str("mem_sys", humanize.Bytes(memStats.Sys)).
			Str("mem_num_gc", humanize.Comma(int64(memStats.NumGC))).
			Msg("summary")
		return nil
	}
	return cmd
}

// serveMetrics starts an HTTP server exposing reg on /metrics.
func serveMetrics(addr string, reg *prometheus.Registry, log *zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	return srv
}

func dotCmd() *cobra.Command {
	var unbalanced bool
	cmd := &cobra.Command{
		Use:   "dot [keys...]",
		Short: "Print the Graphviz rendering of a tree built from integer keys.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(args, unbalanced)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), avltree.Dot(tree))
			return err
		},
	}
	cmd.Flags().BoolVar(&unbalanced, "unbalanced", false, "Build a plain binary search tree.")
	return cmd
}

func printCmd() *cobra.Command {
	var unbalanced bool
	cmd := &cobra.Command{
		Use:   "print [keys...]",
		Short: "Print an ASCII picture of a tree built from integer keys.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(args, unbalanced)
			if err != nil {
				return err
			}
			return avltree.Fprint(cmd.OutOrStdout(), tree)
		},
	}
	cmd.Flags().BoolVar(&unbalanced, "unbalanced", false, "Build a plain binary search tree.")
	return cmd
}

// buildTree inserts the integer keys in args in order.
func buildTree(args []string, unbalanced bool) (avltree.Tree[int], error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid key %q", arg)
		}
		keys = append(keys, key)
	}
	if unbalanced {
		return avltree.BSTFrom(keys, avltree.Ordered[int]), nil
	}
	return avltree.From(keys), nil
}
