// Command pseudoprimes enumerates cyclotomic Fibonacci pseudoprimes for
// a given parameter l: composites (per math/big's probabilistic test)
// that nonetheless pass pseudoprime.FiboPseudoprime. It mirrors
// original_source/cyclopseudo.c's scan-and-report loop, with an
// optional -plot flag that renders the running pseudoprime count as a
// go-echarts line chart.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"cycloprime/primetables"
	"cycloprime/pseudoprime"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pseudoprimes [-min N] [-max N] [-plot path.html] l

Print all cyclotomic Fibonacci pseudoprimes for the given odd prime
parameter l, in the range [-min, -max).`)
	os.Exit(1)
}

func main() {
	min := flag.Int64("min", 9, "first odd candidate to test")
	max := flag.Int64("max", 100000, "exclusive upper bound of the scan")
	plotPath := flag.String("plot", "", "if set, render a running-count line chart to this HTML path")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}
	var l uint64
	if _, err := fmt.Sscanf(flag.Arg(0), "%d", &l); err != nil || l < 3 || l%2 == 0 {
		fmt.Fprintln(os.Stderr, "pseudoprimes: l must be an odd integer greater or equal to 3.")
		os.Exit(1)
	}

	tab, err := primetables.New(uint(l) + 2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pseudoprimes: %v\n", err)
		os.Exit(1)
	}

	var found []int64
	var xs, counts []int64

	if *min%2 == 0 {
		*min++
	}
	for n := *min; n < *max; n += 2 {
		N := big.NewInt(n)
		if N.ProbablyPrime(50) {
			continue
		}
		ramifies, err := pseudoprime.Ramifies(tab, N, uint(l))
		if err != nil {
			fmt.Fprintf(os.Stderr, "pseudoprimes: %v\n", err)
			os.Exit(1)
		}
		if ramifies {
			continue
		}
		isPseudo, _, err := pseudoprime.FiboPseudoprime(tab, N, uint(l))
		if err != nil {
			fmt.Fprintf(os.Stderr, "pseudoprimes: %v\n", err)
			os.Exit(1)
		}
		if isPseudo {
			found = append(found, n)
			fmt.Println(n)
		}
		if *plotPath != "" {
			xs = append(xs, n)
			counts = append(counts, int64(len(found)))
		}
	}

	if *plotPath != "" {
		if err := renderRunningCount(*plotPath, l, xs, counts); err != nil {
			fmt.Fprintf(os.Stderr, "pseudoprimes: plot: %v\n", err)
			os.Exit(1)
		}
	}
}

func renderRunningCount(path string, l uint64, xs, counts []int64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Cyclotomic Fibonacci pseudoprimes for l=%d", l),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "running pseudoprime count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	labels := make([]string, len(xs))
	data := make([]opts.LineData, len(counts))
	for i, x := range xs {
		labels[i] = fmt.Sprintf("%d", x)
		data[i] = opts.LineData{Value: counts[i]}
	}
	line.SetXAxis(labels).AddSeries("pseudoprimes found", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
