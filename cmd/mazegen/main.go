// Package main is the entry point for mazegen.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazegen/internal/generator"
	"github.com/samdwyer/mazegen/internal/telemetry"
)

const (
	exitIOFailure        = 1
	exitInvalidArguments = 255
)

func main() {
	os.Exit(run(os.Args))
}

// run executes one generation for args (program name first) and returns the
// process exit status. Deferred telemetry shutdown completes before main exits.
func run(args []string) int {
	prog, rest := "mazegen", []string(nil)
	if len(args) > 0 {
		prog, rest = args[0], args[1:]
	}

	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Only export traces when a Honeycomb key is configured; otherwise the
	// global no-op provider stays in place.
	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, generator.DefaultOutputPath)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := generator.Main(ctx, rest); err != nil {
		log.Printf("mazegen: %v", err)
		if errors.Is(err, generator.ErrInvalidArguments) {
			fmt.Fprintf(os.Stderr, "usage: %s <dimension>\n", prog)
			return exitInvalidArguments
		}
		return exitIOFailure
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It reports whether an API key was found.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_MAZEGEN_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("HONEYCOMB_MAZEGEN_DATASET")
	if dataset == "" {
		dataset = "mazegen"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
