package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/script-segmenter/pkg/script"
	"github.com/script-segmenter/pkg/wrap"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file")
	inputPath := flag.String("input", "", "Input file (required)")
	outputPath := flag.String("output", "", "Output file (default: stdout)")
	selector := flag.String("selector", "", "Selector for wrap targets (default: whole document)")
	lines := flag.Bool("lines", false, "Line mode: segment each input line to JSONL instead of wrapping HTML")
	limit := flag.Int("limit", 0, "Limit number of lines in line mode (0 = unlimited)")
	threads := flag.Int("threads", 0, "Number of worker threads in line mode (0 = use all CPUs)")
	minLength := flag.Int("min-length", 1, "Minimum trimmed segment length")
	preserveWS := flag.Bool("preserve-whitespace", true, "Fold whitespace into surrounding segments")
	shortNames := flag.Bool("short-names", false, "Use short CSS class names (ml-ko)")
	debug := flag.Bool("debug", false, "Verbose diagnostic logging")

	// Short aliases
	flag.StringVar(configPath, "c", *configPath, "Path to JSON config file (short)")
	flag.StringVar(inputPath, "i", "", "Input file (short)")
	flag.StringVar(outputPath, "o", "", "Output file (short)")
	flag.StringVar(selector, "s", "", "Selector (short)")
	flag.IntVar(limit, "l", 0, "Limit number of lines (short)")
	flag.IntVar(threads, "t", 0, "Number of worker threads (short)")

	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: scriptspan --input <file> [--output <file>] [options]")
		fmt.Fprintln(os.Stderr, "Options:")
		fmt.Fprintln(os.Stderr, "  --config, -c <path>       JSON config file")
		fmt.Fprintln(os.Stderr, "  --selector, -s <sel>      wrap targets (#id, .class, tag, descendant chains)")
		fmt.Fprintln(os.Stderr, "  --lines                   segment input lines to JSONL instead of wrapping HTML")
		fmt.Fprintln(os.Stderr, "  --limit, -l <n>           limit number of lines")
		fmt.Fprintln(os.Stderr, "  --threads, -t <n>         number of worker threads")
		fmt.Fprintln(os.Stderr, "  --min-length <n>          minimum trimmed segment length")
		fmt.Fprintln(os.Stderr, "  --preserve-whitespace     fold whitespace into segments (default true)")
		fmt.Fprintln(os.Stderr, "  --short-names             short CSS class names")
		fmt.Fprintln(os.Stderr, "  --debug                   verbose logging")
		os.Exit(1)
	}

	cfg := script.DefaultConfig()
	if *configPath != "" {
		loaded, err := script.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicitly set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-length":
			cfg.MinSegmentLength = *minLength
		case "preserve-whitespace":
			cfg.PreserveWhitespace = *preserveWS
		case "short-names":
			cfg.Classes.UseShortNames = *shortNames
		case "debug":
			cfg.Debug = *debug
		}
	})

	if cfg.Debug {
		script.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var err error
	if *lines {
		err = runLines(cfg, *inputPath, *outputPath, *limit, *threads)
	} else {
		err = runHTML(cfg, *inputPath, *outputPath, *selector)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runHTML parses an HTML document, wraps the selected subtrees, and
// serializes the result.
func runHTML(cfg script.Config, inputPath, outputPath, selector string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("input file not found: %w", err)
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", inputPath, err)
	}

	if selector == "" {
		selector = cfg.AutoWrapSelector
	}

	wrapper := wrap.New(script.NewWithConfig(cfg))
	start := time.Now()
	count := wrapper.Wrap(doc, selector)
	fmt.Fprintf(os.Stderr, "Wrapped %d root(s) in %s\n", count, time.Since(start).Round(time.Microsecond))

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	writer := bufio.NewWriterSize(out, 256*1024)
	if err := html.Render(writer, doc); err != nil {
		return err
	}
	return writer.Flush()
}

// lineResult is one JSONL row in line mode.
type lineResult struct {
	ID       int              `json:"id"`
	Input    string           `json:"input"`
	Segments []script.Segment `json:"segments"`
}

// runLines segments each input line independently using a worker pool and
// writes one JSON row per line.
func runLines(cfg script.Config, inputPath, outputPath string, limit, threads int) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("input file not found: %w", err)
	}
	defer inputFile.Close()

	var lines []string
	scanner := bufio.NewScanner(inputFile)
	const maxCapacity = 1024 * 1024 // 1MB, long lines happen
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	numLines := len(lines)
	numWorkers := threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	fmt.Fprintf(os.Stderr, "Processing %d lines with %d workers\n", numLines, numWorkers)

	start := time.Now()
	results := make([][]byte, numLines)

	var wg sync.WaitGroup
	jobs := make(chan int, numLines)
	errs := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seg := script.NewWithConfig(cfg)
			for i := range jobs {
				segments := seg.Segment(lines[i])
				row, err := json.Marshal(lineResult{ID: i, Input: lines[i], Segments: segments})
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					return
				}
				results[i] = row
			}
		}()
	}
	for i := 0; i < numLines; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	select {
	case err := <-errs:
		return err
	default:
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	writer := bufio.NewWriterSize(out, 256*1024)
	for _, row := range results {
		writer.Write(row)
		writer.WriteByte('\n')
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	duration := time.Since(start).Seconds()
	fmt.Fprintf(os.Stderr, "Time taken: %.2fs (%.2f lines/sec)\n", duration, float64(numLines)/duration)
	return nil
}
