package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVWriter appends Rows to an underlying io.Writer, writing the header on
// the first call only.
type CSVWriter struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVWriter wraps w for row-at-a-time CSV export.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// WriteRow appends a single Row, including the header only on the first
// call.
func (c *CSVWriter) WriteRow(row Row) error {
	records := []Row{row}
	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.w); err != nil {
			return fmt.Errorf("writing telemetry row: %w", err)
		}
		c.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, c.w); err != nil {
		return fmt.Errorf("writing telemetry row: %w", err)
	}
	return nil
}
