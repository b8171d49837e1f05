// Command emisbench times the batch emissions kernel over synthetic input.
//
// Usage:
//
//	emisbench [flags] [size ...]
//
// Without arguments it runs the default size grid.
//
// Examples:
//
//	emisbench
//	emisbench -iterations 500 4096 65536
//	emisbench -repeat 5 1000000
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-emissions/bench"
)

var defaultSizes = []int{1000, 10000, 100000, 1000000}

func main() {
	iterations := flag.Int("iterations", 100, "kernel calls per timing sample")
	repeat := flag.Int("repeat", 1, "timing samples per size; the fastest is reported")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emisbench [flags] [size ...]\n\n")
		fmt.Fprintf(os.Stderr, "Times the batch emissions kernel over a ramp input and a uniform 0.5 factor.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs sizes %s.\n\n", joinInts(defaultSizes))
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  emisbench\n")
		fmt.Fprintf(os.Stderr, "  emisbench -iterations 500 4096 65536\n")
		fmt.Fprintf(os.Stderr, "  emisbench -repeat 5 1000000\n")
	}
	flag.Parse()

	sizes, err := parseSizes(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if len(sizes) == 0 {
		sizes = defaultSizes
	}
	if *iterations <= 0 || *repeat <= 0 {
		fmt.Fprintf(os.Stderr, "error: -iterations and -repeat must be > 0\n")
		os.Exit(2)
	}

	results := make([]bench.Result, 0, len(sizes))
	for _, n := range sizes {
		results = append(results, fastest(n, *iterations, *repeat))
	}

	if err := printResults(os.Stdout, results); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseSizes(args []string) ([]int, error) {
	sizes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", a, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size must be > 0: %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func fastest(size, iterations, repeat int) bench.Result {
	best := bench.Run(size, iterations)
	for range repeat - 1 {
		if r := bench.Run(size, iterations); r.Elapsed < best.Elapsed {
			best = r
		}
	}
	return best
}

func printResults(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Size\tIterations\tElapsed [ms]\tns/elem\tMelem/s\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t----------\t------------\t-------\t-------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		rate := 0.0
		if ns := r.NsPerElement(); ns > 0 {
			rate = 1e3 / ns
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t%.1f\n",
			r.Size,
			r.Iterations,
			r.Milliseconds(),
			r.NsPerElement(),
			rate,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
