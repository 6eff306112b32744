// Command flowinfo prints sizing and platform information for a unit
// chain.
//
// Usage:
//
//	flowinfo [flags] [unit-name ...]
//
// Unit names are chained in argument order. Without arguments a
// default gain -> rectify -> spectrum chain is used.
//
// Examples:
//
//	flowinfo gain rectify spectrum
//	flowinfo -size 2048 -factor 4 gain decimate
//	flowinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-flow/flow"
	"github.com/cwbudde/algo-flow/flow/alignedbuf"
	"github.com/cwbudde/algo-flow/flow/units"
	"github.com/cwbudde/algo-flow/internal/cpu"
)

type unitEntry struct {
	name  string
	build func(size int, opts unitOptions) (flow.Unit, error)
}

type unitOptions struct {
	gain   float64
	offset float64
	factor int
}

var registry = []unitEntry{
	{"gain", func(size int, o unitOptions) (flow.Unit, error) {
		return units.NewGain(size, o.gain)
	}},
	{"offset", func(size int, o unitOptions) (flow.Unit, error) {
		return units.NewOffset(size, o.offset)
	}},
	{"rectify", func(size int, o unitOptions) (flow.Unit, error) {
		return units.NewRectify(size)
	}},
	{"decimate", func(size int, o unitOptions) (flow.Unit, error) {
		return units.NewDecimate(size, o.factor)
	}},
	{"spectrum", func(size int, o unitOptions) (flow.Unit, error) {
		return units.NewSpectrum(size)
	}},
}

func main() {
	size := flag.Int("size", 1024, "input block size in samples")
	gain := flag.Float64("gain", 2.0, "gain factor for gain units")
	offset := flag.Float64("offset", 0.0, "offset for offset units")
	factor := flag.Int("factor", 2, "decimation factor for decimate units")
	list := flag.Bool("list", false, "list available unit names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: flowinfo [flags] [unit-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints sizing and platform information for a unit chain.\n")
		fmt.Fprintf(os.Stderr, "Unit names are chained in argument order.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  flowinfo gain rectify spectrum\n")
		fmt.Fprintf(os.Stderr, "  flowinfo -size 2048 -factor 4 gain decimate\n")
		fmt.Fprintf(os.Stderr, "  flowinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"gain", "rectify", "spectrum"}
	}

	opts := unitOptions{gain: *gain, offset: *offset, factor: *factor}
	w, labels, err := buildChain(names, *size, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printChain(w, labels)
	printPlatform()
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

// buildChain resolves unit names and links them so each stage consumes
// exactly what its predecessor produces.
func buildChain(names []string, size int, opts unitOptions) (*flow.Workflow, []string, error) {
	byName := make(map[string]unitEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	w := flow.New()
	var labels []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			return nil, nil, fmt.Errorf("unknown unit %q (use -list to see available)", name)
		}
		u, err := e.build(size, opts)
		if err != nil {
			return nil, nil, err
		}
		w.Add(u)
		labels = append(labels, name)
		size = u.OutputCount()
	}
	return w, labels, nil
}

func printChain(w *flow.Workflow, labels []string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tUnit\tIn\tOut\n")
	fmt.Fprintf(tw, "-\t----\t--\t---\n")
	for i, label := range labels {
		u, err := w.UnitAt(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i, label, u.InputCount(), u.OutputCount())
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	fmt.Printf("\nworkflow: in=%d out=%d scratch=%d samples (%d bytes aligned to %d)\n",
		w.InputCount(), w.OutputCount(), w.MaxUnitSize(), 8*w.MaxUnitSize(), alignedbuf.Alignment)
	if err := w.Validate(); err != nil {
		fmt.Printf("warning: %v\n", err)
	}
}

func printPlatform() {
	f := cpu.Detect()
	names := cpu.Names(f)
	simd := "none"
	if len(names) > 0 {
		simd = strings.Join(names, ", ")
	}
	fmt.Printf("platform: %s, simd: %s, vector width: %d bytes\n",
		f.Architecture, simd, cpu.VectorWidth(f))
}
