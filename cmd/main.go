package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"time"

	"brcstats/pkg"

	"github.com/andreyvit/diff"
)

func main() {
	flagProf := flag.String("prof", "", "write cpu profile to file")
	flagTrace := flag.String("trace", "", "write trace to file")
	flagPlot := flag.String("plot", "", "write chunk claim timeline to png file")
	flagCheck := flag.String("check", "", "compare output with expected file")
	flagTimings := flag.Bool("timings", false, "log stage timings to stderr")
	flagSafe := flag.Bool("safe", false, "validate input and fail on malformed lines")
	flagWorkers := flag.Int("workers", 0, "worker count, 0 for one per cpu")
	flagStride := flag.Int("stride", pkg.DefaultStride, "nominal chunk size in bytes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [measurements.txt]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	file := "measurements.txt"
	if flag.NArg() > 0 {
		file = flag.Arg(0)
	}

	if *flagTrace != "" {
		f, err := os.Create(*flagTrace)
		if err != nil {
			log.Fatal(err)
		}
		trace.Start(f)
		defer f.Close()
		defer trace.Stop()
	}
	if *flagProf != "" {
		f, err := os.Create(*flagProf)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(file, *flagCheck, *flagPlot, *flagTimings, pkg.Options{
		Workers: *flagWorkers,
		Stride:  *flagStride,
		Safe:    *flagSafe,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "brc: %v\n", err)
		pprof.StopCPUProfile()
		trace.Stop()
		os.Exit(1)
	}
}

func run(file, check, plotFile string, timings bool, opts pkg.Options) error {
	t := &pkg.Timings{Start: time.Now()}
	opts.Timings = t
	var events []pkg.TEvent
	if plotFile != "" {
		opts.Events = &events
	}

	data, _, err := pkg.MMapFile(file)
	if err != nil {
		return err
	}
	defer func() {
		if err := pkg.Unmap(data); err != nil {
			log.Printf("unmap '%s': %v", file, err)
		}
	}()

	if opts.Safe {
		if err := pkg.ValidateText(data); err != nil {
			return fmt.Errorf("validate '%s': %w", file, err)
		}
	}
	t.Since_Setup = time.Since(t.Start)

	rows, err := pkg.Run(context.Background(), data, opts)
	if err != nil {
		return fmt.Errorf("aggregate '%s': %w", file, err)
	}

	tPrint := time.Now()
	var out bytes.Buffer
	if err := pkg.Format(&out, rows); err != nil {
		return err
	}
	if _, err := os.Stdout.Write(out.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	t.Since_Print = time.Since(tPrint)

	if timings {
		t.Report()
	}
	if plotFile != "" {
		if err := pkg.Plot(events, plotFile); err != nil {
			return err
		}
	}
	if check != "" {
		return compare(out.String(), check)
	}
	return nil
}

func compare(result, checkFile string) error {
	expected, err := os.ReadFile(checkFile)
	if err != nil {
		return fmt.Errorf("read check file '%s': %w", checkFile, err)
	}
	if string(expected) == result {
		log.Printf("output matches '%s'", checkFile)
		return nil
	}

	log.Println(diff.LineDiff(
		diff.TrimLinesInString(splitEntries(string(expected))),
		diff.TrimLinesInString(splitEntries(result))))
	return fmt.Errorf("output differs from '%s'", checkFile)
}

// splitEntries puts one entry per line so the diff stays readable.
func splitEntries(s string) string {
	return strings.ReplaceAll(s, ", ", "\n")
}
