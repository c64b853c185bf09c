// Command fourierprof runs a single transform size in a tight loop under pprof's CPU
// profiler, for hand-inspecting hot spots with `go tool pprof`.
//
// Usage:
//
//	go run . -size 4096 -iters 20000 -cpuprofile out.prof
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/waveform-dsp/fourier"
)

func main() {
	size := flag.Int("size", 4096, "Transform size to profile")
	iters := flag.Int("iters", 20000, "Number of transform calls to run under the profiler")
	cpuprofile := flag.String("cpuprofile", "", "Write a CPU profile to this file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fourierprof:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, "fourierprof:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	p, err := fourier.NewComplex128(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fourierprof:", err)
		os.Exit(1)
	}

	buf := make([]complex128, *size)
	for i := range buf {
		buf[i] = complex(rand.NormFloat64(), rand.NormFloat64())
	}

	for i := 0; i < *iters; i++ {
		p.Transform(buf, fourier.Fft)
	}

	fmt.Printf("ran %d Fft(%d) calls\n", *iters, *size)
}
