package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tickmesh/tickmesh"
	"github.com/tickmesh/tickmesh/internal/simrand"
	"github.com/tickmesh/tickmesh/logging"
)

var (
	hops      int    // number of relay components between source and sink
	tokens    int    // number of tokens the source injects
	latency   int64  // per-hop Link latency, in ticks
	maxDelay  int64  // max extra random delay the source applies per token
	seed      int64  // simrand master seed
	quitAfter int64  // hard tick deadline passed to tickmesh.New
	logLevel  string // log level (trace, debug, info, warn, error, fatal, panic)
)

// rootCmd is the base command for the demo CLI.
var rootCmd = &cobra.Command{
	Use:   "tickmeshdemo",
	Short: "Manual smoke test for the tickmesh discrete-event engine",
}

// runCmd builds a small relay chain and runs it to completion, printing
// end-to-end latency percentiles. It is a hand-assembled topology, not
// a scenario file interpreter — this binary exists to exercise the
// engine and its logging collaborator by hand, not to run arbitrary
// simulations.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a relay-chain smoke test",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		logrus.Infof("starting relay demo: hops=%d tokens=%d latency=%d maxDelay=%d", hops, tokens, latency, maxDelay)

		sim := tickmesh.New(tickmesh.Time(quitAfter))
		rng := simrand.New(seed)
		logger := logging.NewLogger("demo-logger")
		if err := sim.Register(logger); err != nil {
			logrus.Fatalf("register logger: %v", err)
		}

		src := &source{
			ComponentBase: tickmesh.NewComponentBase("source"),
			Out:           mustLink(),
			Log:           logging.NewHandle("source", level),
			count:         tokens,
			maxDelay:      maxDelay,
			rng:           rng,
		}
		if err := sim.Register(src); err != nil {
			logrus.Fatalf("register source: %v", err)
		}
		if err := tickmesh.ConnectBatch(src.Log.BatchLink, logger.In); err != nil {
			logrus.Fatalf("connect source log: %v", err)
		}

		prevOut := src.Out
		for i := 0; i < hops; i++ {
			r := &relay{
				ComponentBase: tickmesh.NewComponentBase(fmt.Sprintf("relay-%d", i)),
				In:            tickmesh.NewPort[token](),
				Out:           mustLink(),
				Log:           logging.NewHandle(fmt.Sprintf("relay-%d", i), level),
			}
			if err := sim.Register(r); err != nil {
				logrus.Fatalf("register relay %d: %v", i, err)
			}
			if err := tickmesh.Connect(prevOut, r.In); err != nil {
				logrus.Fatalf("connect relay %d: %v", i, err)
			}
			if err := tickmesh.ConnectBatch(r.Log.BatchLink, logger.In); err != nil {
				logrus.Fatalf("connect relay %d log: %v", i, err)
			}
			prevOut = r.Out
		}

		snk := &sink{
			ComponentBase: tickmesh.NewComponentBase("sink"),
			In:            tickmesh.NewPort[token](),
			Log:           logging.NewHandle("sink", level),
			expected:      tokens,
		}
		if err := sim.Register(snk); err != nil {
			logrus.Fatalf("register sink: %v", err)
		}
		if err := tickmesh.Connect(prevOut, snk.In); err != nil {
			logrus.Fatalf("connect sink: %v", err)
		}
		if err := tickmesh.ConnectBatch(snk.Log.BatchLink, logger.In); err != nil {
			logrus.Fatalf("connect sink log: %v", err)
		}

		sim.Run()

		p := logger.Percentiles("sink", []float64{0.5, 0.9, 0.99})
		if p != nil {
			logrus.Infof("end-to-end latency: p50=%.1f p90=%.1f p99=%.1f", p[0], p[1], p[2])
		}
		logrus.Info("demo complete")
	},
}

func mustLink() *tickmesh.Link[token] {
	l, err := tickmesh.NewLink[token](tickmesh.Time(latency))
	if err != nil {
		logrus.Fatalf("construct link: %v", err)
	}
	return l
}

// Execute runs the demo CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().IntVar(&hops, "hops", 3, "number of relay components between source and sink")
	runCmd.Flags().IntVar(&tokens, "tokens", 20, "number of tokens the source injects")
	runCmd.Flags().Int64Var(&latency, "latency", 2, "per-hop link latency, in ticks")
	runCmd.Flags().Int64Var(&maxDelay, "max-delay", 5, "max extra random delay the source applies per token")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "simrand master seed")
	runCmd.Flags().Int64Var(&quitAfter, "quit-after", 10000, "hard tick deadline")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}
