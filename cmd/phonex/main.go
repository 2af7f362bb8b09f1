// Command phonex prints the unique Russian phone numbers found in a text file.
//
// Usage:
//
//	phonex --filepath notes.txt
//	phonex notes.txt
//
// Flags:
//
//	--filepath, -f   path to the input text file
//	--config         path to the YAML config (default: $PHONEX_CONFIG or ./phonex.yaml)
//	--log-env        development, debug or production
//	--log-file       rotating log file, or "stdout" / "stderr"
//	--metrics-file   write Prometheus metrics in textfile format
//	--redact-pii     mask phone digits in log records
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
