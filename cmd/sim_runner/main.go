package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/miretskiy/osviz/scenario"
)

func main() {
	// Parse command line flags
	scenarioFile := flag.String("scenario", "", "Path to JSON scenario file")
	family := flag.String("family", "", "Run the textbook preset of a family instead of a file (page-replacement, cpu-scheduling, disk-scheduling)")
	algorithms := flag.String("algorithms", "", "Comma-separated algorithm ids (overrides the scenario's list)")
	outputFile := flag.String("output", "", "Path to output JSON file (optional, prints to stdout if not specified)")
	table := flag.Bool("table", false, "Print a coloured comparison table instead of JSON")
	verbose := flag.Bool("verbose", false, "Echo every step explanation to stderr")
	random := flag.Bool("random", false, "With -family, generate a random workload instead of the preset")
	seed := flag.Int64("seed", 0, "Seed for -random (0 picks one)")
	locality := flag.String("locality", "uniform", "Value distribution for -random (uniform, exponential, geometric)")
	size := flag.Int("size", 0, "Pages, processes or requests for -random (0 uses the family default)")
	flag.Parse()

	if (*scenarioFile == "") == (*family == "") || (*random && *family == "") {
		fmt.Fprintf(os.Stderr, "Usage: %s (-scenario <scenario.json> | -family <family> [-random [-seed N] [-locality L] [-size N]]) [-algorithms a,b] [-output <output.json>] [-table] [-verbose]\n", os.Args[0])
		os.Exit(1)
	}

	var randomOpts *scenario.RandomOptions
	if *random {
		l, err := scenario.ParseLocality(*locality)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		randomOpts = &scenario.RandomOptions{Seed: *seed, Locality: l, Size: *size}
	}

	sc, err := loadScenario(*scenarioFile, *family, randomOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		os.Exit(1)
	}
	if *algorithms != "" {
		sc.Algorithms = splitList(*algorithms)
	}

	// Validate scenario
	if err := sc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid scenario: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Running %s scenario...\n", sc.Family)
	startTime := time.Now()
	out, err := sc.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(startTime)
	fmt.Fprintf(os.Stderr, "Scenario completed in %v (%d algorithms)\n", elapsed, len(out.Algorithms))

	if *verbose {
		if err := writeDetails(os.Stderr, &sc, out); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading steps: %v\n", err)
			os.Exit(1)
		}
	}

	if *table {
		renderTable(os.Stdout, out)
		return
	}

	results := map[string]interface{}{
		"scenario": sc,
		"realTime": elapsed.Seconds(),
		"outcome":  out,
	}

	// Output results
	output, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling results: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, output, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", *outputFile)
	} else {
		fmt.Println(string(output))
	}
}

// loadScenario reads path, or builds the preset (or a random workload) for family
func loadScenario(path, family string, random *scenario.RandomOptions) (scenario.Scenario, error) {
	if path != "" {
		return scenario.Load(path)
	}
	f, err := scenario.ParseFamily(family)
	if err != nil {
		return scenario.Scenario{}, err
	}
	if random != nil {
		return scenario.RandomScenario(f, *random), nil
	}
	return scenario.DefaultScenario(f), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
