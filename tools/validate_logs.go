//go:build ignore

// Validate_logs runs a set of captured ULog files through the record framer
// and message registry and reports which message ids were seen, how long
// their payloads were and which records failed.
//
//	go run tools/validate_logs.go [-t target] <directory-or-file>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muurk/rpmlog/internal/messages"
	"github.com/muurk/rpmlog/internal/npa"
	"github.com/muurk/rpmlog/internal/target"
	"github.com/muurk/rpmlog/internal/ulog"
)

// Statistics tracks decoding results
type Statistics struct {
	TotalRecords   int
	TotalFiles     int
	DecodeSuccess  int
	DecodeFailure  int
	MessageIDs     map[uint32]int
	PayloadLengths map[int]int
	FailedRecords  []FailedRecord
}

// FailedRecord stores information about a record that did not decode
type FailedRecord struct {
	File       string
	LineNumber int
	Line       string
	Error      string
}

func main() {
	targetID := flag.String("t", target.DefaultID, "target chipset id")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: validate_logs [-t target] <directory-or-file>")
		fmt.Println("Example: validate_logs captures/")
		fmt.Println("         validate_logs -t 8960 rpm-20240312.ulog")
		os.Exit(1)
	}
	path := flag.Arg(0)

	catalog, err := target.Builtin()
	if err != nil {
		fmt.Printf("Error loading targets: %v\n", err)
		os.Exit(1)
	}
	profile, err := catalog.Get(*targetID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	registry, err := messages.Default()
	if err != nil {
		fmt.Printf("Error building registry: %v\n", err)
		os.Exit(1)
	}
	// Handles print as hex; no dump is loaded
	ctx := &messages.Context{Profile: profile, Symbols: npa.NewResolver(nil)}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Error accessing path: %v\n", err)
		os.Exit(1)
	}

	var files []string
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.ulog"))
		if err != nil {
			fmt.Printf("Error finding ULog files: %v\n", err)
			os.Exit(1)
		}
		if len(files) == 0 {
			fmt.Printf("No .ulog files found in %s\n", path)
			os.Exit(1)
		}
	} else {
		files = []string{path}
	}

	stats := Statistics{
		MessageIDs:     make(map[uint32]int),
		PayloadLengths: make(map[int]int),
	}

	fmt.Printf("=== RPM Log Validator ===\n")
	fmt.Printf("Target: %s\n", profile)
	fmt.Printf("Files to process: %d\n\n", len(files))

	for _, file := range files {
		processFile(file, registry, ctx, &stats)
	}

	printStatistics(registry, &stats)
}

func processFile(filename string, registry *messages.Registry, ctx *messages.Context, stats *Statistics) {
	stats.TotalFiles++

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file %s: %v\n", filename, err)
		return
	}

	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.TotalRecords++

		fail := func(err error) {
			stats.DecodeFailure++
			stats.FailedRecords = append(stats.FailedRecords, FailedRecord{
				File:       filename,
				LineNumber: i + 1,
				Line:       line,
				Error:      err.Error(),
			})
		}

		rec, err := ulog.ParseLine(line)
		if err != nil {
			fail(err)
			continue
		}
		stats.PayloadLengths[len(rec.Payload)]++

		if _, err := registry.Render(ctx, rec.Opcode, rec.Payload); err != nil {
			fail(err)
			continue
		}
		stats.DecodeSuccess++
		stats.MessageIDs[rec.Opcode]++
	}
}

func printStatistics(registry *messages.Registry, stats *Statistics) {
	fmt.Printf("\n========================================\n")
	fmt.Printf("VALIDATION RESULTS\n")
	fmt.Printf("========================================\n\n")

	total := stats.TotalRecords
	if total == 0 {
		total = 1
	}
	fmt.Printf("Files Processed:    %d\n", stats.TotalFiles)
	fmt.Printf("Total Records:      %d\n", stats.TotalRecords)
	fmt.Printf("Decode Success:     %d (%.2f%%)\n", stats.DecodeSuccess, float64(stats.DecodeSuccess)/float64(total)*100)
	fmt.Printf("Decode Failure:     %d (%.2f%%)\n", stats.DecodeFailure, float64(stats.DecodeFailure)/float64(total)*100)

	fmt.Printf("\n----------------------------------------\n")
	fmt.Printf("MESSAGE ID DISTRIBUTION\n")
	fmt.Printf("----------------------------------------\n")
	ids := make([]uint32, 0, len(stats.MessageIDs))
	for id := range stats.MessageIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		name := "?"
		if e, ok := registry.Lookup(id); ok {
			name = e.Name
		}
		fmt.Printf("0x%04x %-36s %d\n", id, name, stats.MessageIDs[id])
	}
	fmt.Printf("\n%d of %d registered ids seen\n", len(ids), registry.Count())

	fmt.Printf("\n----------------------------------------\n")
	fmt.Printf("PAYLOAD LENGTH DISTRIBUTION\n")
	fmt.Printf("----------------------------------------\n")
	lengths := make([]int, 0, len(stats.PayloadLengths))
	for n := range stats.PayloadLengths {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	for _, n := range lengths {
		fmt.Printf("%d words: %d records\n", n, stats.PayloadLengths[n])
	}

	if len(stats.FailedRecords) > 0 {
		fmt.Printf("\n----------------------------------------\n")
		fmt.Printf("DECODE FAILURES (%d total)\n", len(stats.FailedRecords))
		fmt.Printf("----------------------------------------\n")

		maxShow := 10
		if len(stats.FailedRecords) > maxShow {
			fmt.Printf("(Showing first %d of %d failures)\n", maxShow, len(stats.FailedRecords))
		}
		for i, failed := range stats.FailedRecords {
			if i >= maxShow {
				break
			}
			preview := failed.Line
			if len(preview) > 80 {
				preview = preview[:80] + "..."
			}
			fmt.Printf("\nFailure #%d:\n", i+1)
			fmt.Printf("  File: %s (line %d)\n", failed.File, failed.LineNumber)
			fmt.Printf("  Error: %s\n", failed.Error)
			fmt.Printf("  Line: %s\n", preview)
		}
	}

	fmt.Printf("\n========================================\n")
	if stats.DecodeFailure == 0 {
		fmt.Printf("SUCCESS: all records decoded\n")
	} else {
		fmt.Printf("ISSUES FOUND: %d records failed to decode\n", stats.DecodeFailure)
	}
	fmt.Printf("========================================\n")
}
