package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vortex-fintech/phonex/config"
	"github.com/vortex-fintech/phonex/logger"
	"github.com/vortex-fintech/phonex/metrics"
	"github.com/vortex-fintech/phonex/phone"
	"github.com/vortex-fintech/phonex/piiutil"
	"github.com/vortex-fintech/phonex/source"
)

const serviceName = "phonex"

var errNoInput = errors.New("input file is required: pass --filepath or a positional path")

type flags struct {
	filepath    string
	configPath  string
	logEnv      string
	logFile     string
	metricsFile string
	redactPII   bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "phonex [--filepath] <file>",
		Short:        "Extract unique Russian phone numbers from a text file",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := inputPath(f.filepath, args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyOverrides(cmd, cfg, f)

			return run(cmd.Context(), cfg, path, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.filepath, "filepath", "f", "", "path to the input text file")
	fs.StringVar(&f.configPath, "config", "", "path to the YAML config file")
	fs.StringVar(&f.logEnv, "log-env", "", "log preset: development, debug or production")
	fs.StringVar(&f.logFile, "log-file", "", `log file path, or "stdout" / "stderr"`)
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.BoolVar(&f.redactPII, "redact-pii", false, "mask phone digits in log records")

	return cmd
}

func inputPath(flagPath string, args []string) (string, error) {
	switch {
	case flagPath != "" && len(args) == 1 && args[0] != flagPath:
		return "", fmt.Errorf("conflicting input paths %q and %q", flagPath, args[0])
	case flagPath != "":
		return flagPath, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errNoInput
	}
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cmd *cobra.Command, cfg *config.Config, f flags) {
	fs := cmd.Flags()
	if fs.Changed("log-env") {
		cfg.Log.Env = f.logEnv
	}
	if fs.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if fs.Changed("metrics-file") {
		cfg.Metrics.File = f.metricsFile
	}
	if fs.Changed("redact-pii") {
		cfg.Log.RedactPII = f.redactPII
	}
}

func newLogger(cfg config.LogConfig, stderr io.Writer) *logger.Logger {
	log, err := logger.New(serviceName, cfg.Env, logger.WithFile(logger.FileConfig{
		Path:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxAgeDays: cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}))
	if err != nil {
		fmt.Fprintf(stderr, "logging disabled: %v\n", err)
		return logger.Nop()
	}
	return log
}

func run(ctx context.Context, cfg *config.Config, path string, stdout, stderr io.Writer) error {
	log := newLogger(cfg.Log, stderr)
	defer log.SafeSync()

	log.Infow("starting extraction", "path", path)

	text, err := source.NewReader(source.WithLogger(log)).Read(ctx, path)
	if err != nil {
		return err
	}

	opts := []phone.Option{phone.WithLogger(log)}
	if cfg.Log.RedactPII {
		opts = append(opts, phone.WithRedactor(piiutil.MaskPhone))
	}

	var reg *prometheus.Registry
	if cfg.Metrics.File != "" {
		reg = prometheus.NewRegistry()
		rec, err := metrics.NewExtraction(reg, cfg.Metrics.Namespace)
		if err != nil {
			log.Errorw("metrics disabled", "error", err)
			reg = nil
		} else {
			opts = append(opts, phone.WithRecorder(rec))
		}
	}

	numbers := phone.NewExtractor(opts...).Extract(text)

	if err := printNumbers(stdout, cfg.Output.Header, numbers); err != nil {
		return err
	}

	if reg != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.File, reg); err != nil {
			log.Errorw("metrics textfile not written", "path", cfg.Metrics.File, "error", err)
		}
	}
	return nil
}

func printNumbers(w io.Writer, header string, numbers []string) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for _, n := range numbers {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
