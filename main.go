package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nvr-ai/go-circlecrop/circlecrop"
	"go.uber.org/zap"
)

const usage = "usage: circle-crop <input> <output>"

func main() {
	logger := newLogger()
	defer logger.Sync()

	run(os.Args[1:], os.Stdout, logger)
}

// run processes one input/output pair and prints a single status line.
// Failures are reported, not signalled through the exit status.
func run(args []string, stdout io.Writer, logger *zap.Logger) {
	if len(args) != 2 {
		fmt.Fprintf(stdout, "Error: %s\n", usage)
		return
	}

	if err := circlecrop.Process(args[0], args[1], circlecrop.Options{Logger: logger}); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(stdout, "Success")
}

// newLogger writes warnings and errors to stderr; stdout is reserved for the
// status line.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
