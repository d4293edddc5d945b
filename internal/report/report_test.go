package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/specialistvlad/pairsum/internal/pairsum"
	"github.com/specialistvlad/pairsum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_FullReport(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.Options(2020, "input.txt")
	p.Discovered("input.txt", 6)
	p.Result("NaiveSolver", []pairsum.Pair{{A: 1721, B: 299}, {A: 299, B: 1721}}, 1234*time.Nanosecond)
	p.Result("IndexedSolver", nil, 2*time.Millisecond)

	require.NoError(t, p.Err())
	expected := `The value for --sum is: 2020
The value for --file is: input.txt

Integers discovered in input.txt: 6

Executing NaiveSolver
Method executed in 00:00:00.000001234 time and used 1234 ns.
1721, 299, multiplying to 514579
299, 1721, multiplying to 514579

Executing IndexedSolver
Method executed in 00:00:00.002000000 time and used 2000000 ns.
`
	assert.Equal(t, expected, out.String())
}

func TestPrinter_StopsAfterFirstWriteError(t *testing.T) {
	boom := errors.New("disk full")
	p := NewPrinter(testutil.FailingWriter{Err: boom})

	p.Options(1, "a")
	p.Discovered("a", 1)

	assert.ErrorIs(t, p.Err(), boom)
}
