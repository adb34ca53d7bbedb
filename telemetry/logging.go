// Package telemetry provides logging, FPS/count tracking, and CSV export
// for the maze engine.
package telemetry

import (
	"fmt"
	"io"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination. Passing nil restores the
// stdout fallback.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message, used for mazeio's dropped-constraint
// warnings and the demo's import/export messages instead of panicking.
func Logf(format string, args...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}
