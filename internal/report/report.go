// Package report prints the human-readable run summary: the effective
// options, how many values were read, and one block per solver with its
// timing and the pairs it found.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/pairsum/internal/pairsum"
	"github.com/specialistvlad/pairsum/internal/stopwatch"
)

// Printer writes report lines to w. After the first failed write every
// further call is a no-op and Err returns that failure.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Options prints the effective target sum and input file.
func (p *Printer) Options(sum int, file string) {
	p.printf("The value for --sum is: %d\n", sum)
	p.printf("The value for --file is: %s\n", file)
}

// Discovered prints how many integers were read from file.
func (p *Printer) Discovered(file string, count int) {
	p.printf("\nIntegers discovered in %s: %d\n", file, count)
}

// Result prints one solver block: header, timing line, then the pairs with
// their products.
func (p *Printer) Result(title string, pairs []pairsum.Pair, elapsed time.Duration) {
	p.printf("\nExecuting %s\n", title)
	p.printf("Method executed in %s time and used %d ns.\n", stopwatch.Format(elapsed), elapsed.Nanoseconds())
	for _, pair := range pairs {
		p.printf("%s, multiplying to %d\n", pair, pair.Product())
	}
}
