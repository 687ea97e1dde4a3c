// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/logsight/logsight/analyze"
	"github.com/logsight/logsight/analyze/telemetry"
)

var (
	inputPath    string
	outputDir    string
	configPath   string
	logLevel     string
	metricsAddr  string
	windowHours  float64
	topN         int
	watchSeconds int64
	blockSeconds int64
	chances      int
)

var rootCmd = &cobra.Command{
	Use:   "logsight",
	Short: "Single-pass analytics for Apache access logs",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze an access log and write the feature reports",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := analyze.DefaultConfig()
		if configPath != "" {
			cfg, err = LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Loading config %s: %v", configPath, err)
			}
		}
		applyFlagOverrides(cmd, &cfg)

		telemetry.Enable(telemetry.Config{
			Enabled:     metricsAddr != "",
			MetricsAddr: metricsAddr,
		})

		logrus.Infof("Analyzing %s: window=%.2fh, top=%d, blocker=%d/%ds watch %ds block",
			inputPath, cfg.WindowHours, cfg.TopN,
			cfg.Blocker.Chances, cfg.Blocker.WatchSeconds, cfg.Blocker.BlockSeconds)

		file, err := os.Open(inputPath)
		if err != nil {
			logrus.Fatalf("Opening input %s: %v", inputPath, err)
		}
		defer file.Close()

		pipeline := analyze.NewPipeline(cfg)
		if err := pipeline.Run(file); err != nil {
			logrus.Fatalf("Reading input %s: %v", inputPath, err)
		}
		pipeline.Finalize()

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			logrus.Fatalf("Creating output directory %s: %v", outputDir, err)
		}
		pipeline.WriteReports(analyze.DefaultReportPaths(outputDir))

		logrus.Infof("Done: %d records analyzed, %d lines skipped, %d blocked",
			pipeline.Accepted(), pipeline.Rejected(), len(pipeline.BlockedLines()))
	},
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *analyze.Config) {
	if cmd.Flags().Changed("window") {
		cfg.WindowHours = windowHours
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = topN
	}
	if cmd.Flags().Changed("watch-seconds") {
		cfg.Blocker.WatchSeconds = watchSeconds
	}
	if cmd.Flags().Changed("block-seconds") {
		cfg.Blocker.BlockSeconds = blockSeconds
	}
	if cmd.Flags().Changed("chances") {
		cfg.Blocker.Chances = chances
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "log_input/log.txt", "Access log file to analyze")
	runCmd.Flags().StringVar(&outputDir, "out", "log_output", "Directory for the feature reports")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML analyzer config file")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	runCmd.Flags().Float64Var(&windowHours, "window", 1, "Busiest-window length in hours")
	runCmd.Flags().IntVar(&topN, "top", 10, "Entries per top/bottom report")
	runCmd.Flags().Int64Var(&watchSeconds, "watch-seconds", 20, "Failed-login streak budget in seconds")
	runCmd.Flags().Int64Var(&blockSeconds, "block-seconds", 300, "Block duration in seconds")
	runCmd.Flags().IntVar(&chances, "chances", 3, "Failed logins that trigger a block")

	rootCmd.AddCommand(runCmd)
}
