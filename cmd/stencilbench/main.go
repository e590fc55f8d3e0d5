package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stencilbench/internal/bench"
	"github.com/san-kum/stencilbench/internal/compute"
	"github.com/san-kum/stencilbench/internal/config"
	"github.com/san-kum/stencilbench/internal/precision"
	"github.com/san-kum/stencilbench/internal/results"
	"github.com/san-kum/stencilbench/internal/sweep"
	"github.com/san-kum/stencilbench/internal/tui"
)

var (
	backend  string
	threads  int
	boundary float64
	checksum bool
	// Sweep options
	configFile string
	output     string
	sweepIters int
	repeats    int
	// Live view options
	fps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stencilbench",
		Short: "2D Jacobi stencil benchmark across backends and precisions",
	}

	runCmd := &cobra.Command{
		Use:   "run N M iters precision",
		Short: "run one benchmark and print its CSV record",
		Long: "Runs a fixed-iteration Jacobi solve and prints one CSV line:\n" +
			"backend,precision,N,M,iters,runtime_ms,mlups,rel_error\n" +
			"precision is one of f64, f32, f16.",
		Args: cobra.ExactArgs(4),
		RunE: runBenchmark,
	}
	runCmd.Flags().StringVar(&backend, "backend", "", "backend (cpu, cuda, fpga, serial; default auto)")
	runCmd.Flags().IntVar(&threads, "threads", 0, "cpu worker count (0 = all cores)")
	runCmd.Flags().Float64Var(&boundary, "boundary", config.DefaultBoundary, "top edge boundary value")
	runCmd.Flags().BoolVar(&checksum, "checksum", false, "print final grid checksum to stderr")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a benchmark sweep and append results to a CSV file",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "sweep config file path (yaml)")
	sweepCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "results CSV path")
	sweepCmd.Flags().IntVar(&sweepIters, "iters", config.DefaultIters, "iterations per run")
	sweepCmd.Flags().IntVar(&repeats, "repeats", config.DefaultRepeats, "repeats per configuration")
	sweepCmd.Flags().IntVar(&threads, "threads", 0, "cpu worker count (0 = all cores)")

	plotCmd := &cobra.Command{
		Use:   "plot [results.csv]",
		Short: "plot throughput vs grid size from a results file",
		Args:  cobra.ExactArgs(1),
		RunE:  plotResults,
	}

	liveCmd := &cobra.Command{
		Use:   "live [N [M]]",
		Short: "watch the heat field relax in the terminal",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&backend, "backend", "cpu", "backend (cpu, serial)")
	liveCmd.Flags().Float64Var(&boundary, "boundary", config.DefaultBoundary, "top edge boundary value")
	liveCmd.Flags().IntVar(&fps, "fps", 30, "passes per second")

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list backends and the precisions they implement",
		RunE:  listBackends,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, plotCmd, liveCmd, backendsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid N: %q", args[0])
	}
	m, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid M: %q", args[1])
	}
	iters, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid iteration count: %q", args[2])
	}
	tag, err := precision.Parse(args[3])
	if err != nil {
		return err
	}

	if backend == "" {
		backend = compute.AutoSelect().Name()
	}

	params := bench.Params{
		Backend:   backend,
		Precision: tag,
		N:         n,
		M:         m,
		Iters:     iters,
		Boundary:  boundary,
		Workers:   threads,
	}

	res, final, err := bench.Execute(params)
	if err != nil {
		return err
	}

	if tag != precision.F64 {
		ref, err := bench.Reference(params)
		if err != nil {
			return err
		}
		res.RelError = bench.RelError(final, ref, n, m)
	}

	if checksum {
		sum := 0.0
		for _, v := range final {
			sum += v
		}
		fmt.Fprintf(os.Stderr, "checksum=%.6f\n", sum)
	}

	fmt.Println(res.CSV())
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("iters") {
		cfg.Iters = sweepIters
	}
	if cmd.Flags().Changed("repeats") {
		cfg.Repeats = repeats
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = threads
	}

	rows, err := sweep.New(cfg).Run()
	if err != nil {
		return err
	}

	fmt.Println(sweep.Table(rows))
	fmt.Printf("wrote %d rows to %s\n", len(rows), cfg.Output)
	return nil
}

func plotResults(cmd *cobra.Command, args []string) error {
	rows, err := results.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	byPrecision := make(map[precision.Tag][]bench.Result)
	for _, r := range rows {
		byPrecision[r.Precision] = append(byPrecision[r.Precision], r)
	}

	for _, tag := range precision.All() {
		series := byPrecision[tag]
		if len(series) == 0 {
			continue
		}
		sort.Slice(series, func(i, j int) bool { return series[i].N < series[j].N })

		data := make([]float64, len(series))
		sizes := make([]string, len(series))
		for i, r := range series {
			data[i] = r.MLUPS
			sizes[i] = strconv.Itoa(r.N)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("mlups vs grid size (%s)", tag)),
		)
		fmt.Println(graph)
		fmt.Printf("sizes: %v\n\n", sizes)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	n, m := 48, 48
	var err error
	if len(args) >= 1 {
		if n, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid N: %q", args[0])
		}
		m = n
	}
	if len(args) == 2 {
		if m, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid M: %q", args[1])
		}
	}

	strat, err := compute.Get(backend)
	if err != nil {
		return err
	}
	if !strat.Available() {
		return fmt.Errorf("backend %s is not available in this build", backend)
	}
	defer strat.Cleanup()

	return tui.Run(n, m, boundary, fps, strat)
}

func listBackends(cmd *cobra.Command, args []string) error {
	for _, name := range compute.Names() {
		strat, err := compute.Get(name)
		if err != nil {
			return err
		}

		status := "available"
		if !strat.Available() {
			status = "unavailable"
		}

		var precs []string
		for _, tag := range precision.All() {
			if strat.Supports(tag) {
				precs = append(precs, tag.String())
			}
		}

		fmt.Printf("%-8s %-12s %v\n", name, status, precs)
	}
	return nil
}
