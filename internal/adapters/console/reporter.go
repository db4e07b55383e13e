// Package console prints the per-page acknowledgements of a generation pass.
package console

import (
	"fmt"
	"io"
)

type Reporter struct{ w io.Writer }

func NewReporter(w io.Writer) *Reporter { return &Reporter{w: w} }

func (r *Reporter) Generated(path string) {
	fmt.Fprintf(r.w, "Generated %s\n", path)
}

func (r *Reporter) Completed() {
	fmt.Fprintln(r.w, "All room pages generated successfully!")
}
