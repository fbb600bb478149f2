// Command lsap solves a linear sum assignment problem described in
// DIMACS assignment format and prints the resulting matching.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vlath/lsap/assign"
	"github.com/vlath/lsap/assign/dimacs"
)

// logLevelFlag adapts logrus.Level to pflag.Value so --verbosity accepts
// level names ("info", "debug", ...) instead of a bare integer.
type logLevelFlag struct {
	logrus.Level
}

func (f *logLevelFlag) Type() string { return "loglevel" }

func (f *logLevelFlag) Set(s string) error {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return err
	}
	f.Level = lvl
	return nil
}

var _ pflag.Value = (*logLevelFlag)(nil)

func main() {
	verbosity := logLevelFlag{Level: logrus.InfoLevel}
	var (
		maximize     bool
		alpha        int64
		stackOrder   string
		debug        bool
		outputDimacs string
	)

	cmd := &cobra.Command{
		Use:   "lsap FILE",
		Short: "Solve a linear sum assignment problem in DIMACS format",
		Args:  cobra.ExactArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetLevel(verbosity.Level)

			policy := assign.LIFOPolicy
			switch stackOrder {
			case "lifo":
				policy = assign.LIFOPolicy
			case "fifo":
				policy = assign.FIFOPolicy
			default:
				return fmt.Errorf("lsap: unknown --stack-order %q (want lifo or fifo)", stackOrder)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("lsap: %w", err)
			}
			defer f.Close()

			opts := []assign.Option{
				assign.WithCostScalingDivisor(assign.CostValue(alpha)),
				assign.WithActiveNodePolicy(policy),
				assign.WithDebug(debug),
			}
			solver, graph, err := dimacs.Parse(f, maximize, opts...)
			if err != nil {
				return fmt.Errorf("lsap: %w", err)
			}

			start := time.Now()
			ok := solver.ComputeAssignment()
			logger.WithFields(logrus.Fields{
				"elapsed": time.Since(start),
				"stats":   solver.StatsString(),
			}).Debug("solve finished")

			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "infeasible")
				return nil
			}
			if solver.OverflowRisk() {
				logger.Warn("price lower bound computation signaled a possible overflow; result may not be reliable")
			}

			cost := solver.GetCost()
			if maximize {
				cost = -cost
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cost %d\n", cost)
			for left := assign.NodeIndex(0); left < graph.NumLeftNodes(); left++ {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", left, solver.GetMate(left))
			}

			if outputDimacs != "" {
				out, err := os.Create(outputDimacs)
				if err != nil {
					return fmt.Errorf("lsap: %w", err)
				}
				defer out.Close()
				if err := dimacs.WriteProblem(out, graph, solver); err != nil {
					return fmt.Errorf("lsap: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&maximize, "maximize", false, "negate costs before solving, so the result maximizes the original costs")
	cmd.Flags().Int64Var(&alpha, "alpha", 5, "cost scaling divisor (must be >= 2)")
	cmd.Flags().StringVar(&stackOrder, "stack-order", "lifo", "active-node extraction order: lifo or fifo")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable internal invariant assertions")
	cmd.Flags().StringVar(&outputDimacs, "output", "", "write the parsed problem back out in DIMACS format to `file`")
	cmd.Flags().Var(&verbosity, "verbosity", "log verbosity: panic, fatal, error, warn, info, debug, trace")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lsap: error: %v\n", err)
		os.Exit(1)
	}
}
