// Command fourierbench times Fft throughput across a configurable list of sizes and
// both precisions.
//
// Usage:
//
//	go run . -sizes 64,729,1013 -iters 2000
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/waveform-dsp/fourier"
)

func main() {
	sizesFlag := flag.String("sizes", "64,243,729,1013,4096", "Comma-separated transform sizes to benchmark")
	iters := flag.Int("iters", 500, "Timed iterations per size/precision combination")
	warmup := flag.Int("warmup", 20, "Warmup iterations before timing starts")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fourierbench:", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "size\tprecision\tns/op\tGFLOP/s")
	for _, n := range sizes {
		if d, ok := benchFloat64(n, *iters, *warmup); ok {
			fmt.Fprintf(w, "%d\tfloat64\t%.1f\t%.2f\n", n, float64(d.Nanoseconds())/float64(*iters), gflops(n, d, *iters))
		}
		if d, ok := benchFloat32(n, *iters, *warmup); ok {
			fmt.Fprintf(w, "%d\tfloat32\t%.1f\t%.2f\n", n, float64(d.Nanoseconds())/float64(*iters), gflops(n, d, *iters))
		}
	}
	w.Flush()
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", tok, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func benchFloat64(n, iters, warmup int) (time.Duration, bool) {
	p, err := fourier.NewComplex128(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fourierbench: skipping N=%d (float64): %v\n", n, err)
		return 0, false
	}
	buf := randComplex128(n)
	for i := 0; i < warmup; i++ {
		p.Transform(buf, fourier.Fft)
	}
	start := time.Now()
	for i := 0; i < iters; i++ {
		p.Transform(buf, fourier.Fft)
	}
	return time.Since(start), true
}

func benchFloat32(n, iters, warmup int) (time.Duration, bool) {
	p, err := fourier.NewComplex64(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fourierbench: skipping N=%d (float32): %v\n", n, err)
		return 0, false
	}
	buf := randComplex64(n)
	for i := 0; i < warmup; i++ {
		p.Transform(buf, fourier.Fft)
	}
	start := time.Now()
	for i := 0; i < iters; i++ {
		p.Transform(buf, fourier.Fft)
	}
	return time.Since(start), true
}

func randComplex128(n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rand.NormFloat64(), rand.NormFloat64())
	}
	return x
}

func randComplex64(n int) []complex64 {
	x := make([]complex64, n)
	for i := range x {
		x[i] = complex(float32(rand.NormFloat64()), float32(rand.NormFloat64()))
	}
	return x
}

// gflops estimates throughput from the standard 5*N*log2(N) complex-FFT flop count.
func gflops(n int, d time.Duration, iters int) float64 {
	flops := 5 * float64(n) * math.Log2(float64(n)) * float64(iters)
	return flops / d.Seconds() / 1e9
}
