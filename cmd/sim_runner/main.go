package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type result struct {
	Algorithm requests.Algorithm           `json:"algorithm"`
	Response  responses.SimulationResponse `json:"response"`
}

func main() {
	inputFile := flag.String("input", "", "Path to JSON simulation request ('-' reads stdin)")
	algorithm := flag.String("algorithm", "", "Override the request's algorithm")
	all := flag.Bool("all", false, "Run every algorithm against the request's processes")
	format := flag.String("format", "table", "Output format: table or json")
	outputFile := flag.String("output", "", "Path to output file (optional, prints to stdout if not specified)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -input <request.json> [-algorithm <tag>] [-all] [-format table|json] [-output <file>]\n", os.Args[0])
		os.Exit(1)
	}
	if *format != "table" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Unknown format %q (must be 'table' or 'json')\n", *format)
		os.Exit(1)
	}

	request, err := readRequest(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading request: %v\n", err)
		os.Exit(1)
	}
	if *algorithm != "" {
		request.Algorithm = requests.Algorithm(*algorithm)
	}

	algorithms := []requests.Algorithm{request.Algorithm}
	if *all {
		algorithms = requests.Algorithms()
	}

	results := make([]result, 0, len(algorithms))
	for _, a := range algorithms {
		request.Algorithm = a
		response, err := schedulers.Simulate(request)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating %s: %v\n", a, err)
			os.Exit(1)
		}
		results = append(results, result{Algorithm: a, Response: response})
	}

	out := io.Writer(os.Stdout)
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if *format == "json" {
		err = writeJSON(out, results)
	} else {
		for _, r := range results {
			writeTables(out, r.Algorithm, r.Response)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
}

func readRequest(path string) (requests.SimulationRequest, error) {
	var request requests.SimulationRequest

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return request, err
	}

	if err := json.Unmarshal(data, &request); err != nil {
		return request, fmt.Errorf("parsing request JSON: %w", err)
	}
	return request, nil
}

func writeJSON(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0].Response)
	}
	return enc.Encode(results)
}
