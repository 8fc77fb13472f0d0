package output

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
)

// ErrWriter tracks the first write error. Write keeps returning that
// error without writing.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w, nil}
}

// WriteLines writes every line followed by a newline.
func WriteLines(w io.Writer, lines iter.Seq[string]) error {
	ew := NewErrWriter(w)
	for line := range lines {
		fmt.Fprintln(ew, line)
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}

// Config writes the hardware configuration constants.
func Config(w io.Writer, processCount int) error {
	ew := NewErrWriter(w)
	fmt.Fprint(ew, "// These are assembler maintained constants.\n")
	fmt.Fprint(ew, "// Do not change manually.\n")
	fmt.Fprint(ew, "\n")
	fmt.Fprintf(ew, "parameter process_count = %d;", processCount)
	return ew.Err
}
