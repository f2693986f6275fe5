// Package display renders arrays as text.
//
// It only reads arrays through their public accessors and the stride
// traversal, so any layout the engine produces prints in logical order.
package display

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/ndarray/internal/tensor"
)

// DefaultPrecision is the number of decimals Format uses by default.
const DefaultPrecision = 3

var errReleased = errors.New("display: array has been released")

// Format renders a with nested brackets, one innermost row per line,
// e.g. for shape (2, 3):
//
//	[[1.000 2.000 3.000]
//	 [4.000 5.000 6.000]]
func Format(a *tensor.Array, precision int) string {
	if a.Released() {
		return "[released]"
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	ndim := a.NDim()
	data := a.Data()
	siblings := make([]int, ndim)
	firstInRow := true

	var b strings.Builder
	tensor.Traverse(a, tensor.Visitor{
		Enter: func(d int) {
			if siblings[d] > 0 {
				b.WriteString(strings.Repeat("\n", ndim-d))
				b.WriteString(strings.Repeat(" ", d))
			}
			b.WriteByte('[')
			if d+1 < ndim {
				siblings[d+1] = 0
			}
			if d == ndim-1 {
				firstInRow = true
			}
		},
		Element: func(off int) {
			if !firstInRow {
				b.WriteByte(' ')
			}
			firstInRow = false
			b.WriteString(strconv.FormatFloat(float64(data[off]), 'f', precision, 32))
		},
		Leave: func(d int) {
			b.WriteByte(']')
			siblings[d]++
		},
	})
	return b.String()
}

// Show writes Format(a, DefaultPrecision) followed by a newline.
func Show(w io.Writer, a *tensor.Array) error {
	_, err := fmt.Fprintln(w, Format(a, DefaultPrecision))
	return err
}

// Info writes a table of a's layout metadata: shape, strides, backstrides
// and contiguity flags.
func Info(w io.Writer, a *tensor.Array) error {
	if a.Released() {
		return errReleased
	}

	data := [][]string{
		{"shape", a.Shape().String()},
		{"ndim", strconv.Itoa(a.NDim())},
		{"size", strconv.Itoa(a.Size())},
		{"itemsize", strconv.Itoa(a.ItemSize())},
		{"strides", tuple(a.Strides())},
		{"byte strides", tuple(a.ByteStrides())},
		{"backstrides", tuple(a.Backstrides())},
		{"C-contiguous", strconv.FormatBool(a.IsCContiguous())},
		{"F-contiguous", strconv.FormatBool(a.IsFContiguous())},
		{"row-major", strconv.FormatBool(a.IsRowMajor())},
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"FIELD", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func tuple(v []int) string {
	return tensor.Shape(v).String()
}
