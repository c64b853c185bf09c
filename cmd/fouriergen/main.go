// Command fouriergen emits a Go source file declaring a fixed-size transform type: a
// named array type backed by a single package-level *fourier.Plan built once in an
// init(), the Go analogue of a compile-time-sized transform specialization. Intended to
// be invoked from a //go:generate directive.
//
// Usage:
//
//	go run github.com/waveform-dsp/fourier/cmd/fouriergen \
//	    -name Size8 -size 8 -precision complex128 -package fixedgen -out fixed_example.go
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

var fixedTemplate = template.Must(template.New("fixed").Parse(`// Code generated by fouriergen -name {{.Name}} -size {{.Size}} -precision {{.Precision}}. DO NOT EDIT.

package {{.Package}}

import "github.com/waveform-dsp/fourier"

// {{.Name}} is a fixed-length-{{.Size}} transform buffer of {{.Precision}} values.
type {{.Name}} [{{.Size}}]{{.Precision}}

var {{.Name}}Plan {{.PlanType}}

func init() {
	p, err := {{.NewFunc}}({{.Size}})
	if err != nil {
		panic(err)
	}
	{{.Name}}Plan = p
}

// Transform evaluates kind in place over x.
func (x *{{.Name}}) Transform(kind fourier.Kind) {
	{{.Name}}Plan.Transform(x[:], kind)
}
`))

type fixedData struct {
	Name      string
	Size      int
	Precision string
	Package   string
	PlanType  string
	NewFunc   string
}

func main() {
	name := flag.String("name", "", "Exported type name for the generated fixed-size transform")
	size := flag.Int("size", 0, "Fixed transform length")
	precision := flag.String("precision", "complex128", "complex64 or complex128")
	pkg := flag.String("package", "main", "Package name for the generated file")
	out := flag.String("out", "", "Output file path")
	flag.Parse()

	if *name == "" || *size <= 0 || *out == "" {
		fmt.Fprintln(os.Stderr, "fouriergen: -name, -size, and -out are required")
		os.Exit(1)
	}

	data := fixedData{
		Name:      *name,
		Size:      *size,
		Precision: *precision,
		Package:   *pkg,
	}
	switch *precision {
	case "complex64":
		data.PlanType = "*fourier.Complex64Plan"
		data.NewFunc = "fourier.NewComplex64"
	case "complex128":
		data.PlanType = "*fourier.Complex128Plan"
		data.NewFunc = "fourier.NewComplex128"
	default:
		fmt.Fprintf(os.Stderr, "fouriergen: unsupported precision %q\n", *precision)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fouriergen:", err)
		os.Exit(1)
	}
	defer f.Close()

	var buf []byte
	buf, err = renderAndFormat(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fouriergen:", err)
		os.Exit(1)
	}
	if _, err := f.Write(buf); err != nil {
		fmt.Fprintln(os.Stderr, "fouriergen:", err)
		os.Exit(1)
	}
}

func renderAndFormat(data fixedData) ([]byte, error) {
	var raw []byte
	w := &sliceWriter{&raw}
	if err := fixedTemplate.Execute(w, data); err != nil {
		return nil, err
	}
	return format.Source(raw)
}

type sliceWriter struct {
	buf *[]byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
