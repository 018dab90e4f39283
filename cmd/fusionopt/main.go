// Command fusionopt decodes a builder.Config from a JSON or YAML file, runs
// every fusion algorithm against the resulting Application, and prints the
// results sorted by feasibility then ascending cost.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vexflow/fusionopt/builder"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/milp"
	"github.com/vexflow/fusionopt/runner"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fusionopt:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fusionopt", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a builder.Config file (.json, .yaml, or .yml)")
	appName := fs.String("name", "app", "name given to the built application")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return errors.New("fusionopt: -config is required")
	}

	cfg, err := decodeConfig(*configPath)
	if err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	app, err := builder.Build(*appName, cfg)
	if err != nil {
		return fmt.Errorf("building application: %w", err)
	}

	results := runner.Run(context.Background(), app, milp.BranchAndBound{})
	printResults(os.Stdout, results)
	return nil
}

func decodeConfig(path string) (builder.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return builder.Config{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return builder.DecodeYAML(data)
	case ".json":
		return builder.DecodeJSON(data)
	default:
		return builder.Config{}, fmt.Errorf("unrecognized config extension %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}
}

func printResults(w *os.File, results []fusionresult.Result) {
	fmt.Fprintf(w, "%-24s %-9s %14s %12s %10s\n", "ALGORITHM", "FEASIBLE", "COST", "LATENCY(MS)", "RUNTIME(MS)")
	for _, res := range results {
		fmt.Fprintf(w, "%-24s %-9v %14.6f %12.1f %10.3f\n", res.Name, res.Feasible, res.Cost, res.Latency, res.RuntimeMS)
		if res.Error != "" {
			fmt.Fprintf(w, "  error: %s\n", res.Error)
		}
	}
}
