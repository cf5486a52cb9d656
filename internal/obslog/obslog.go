// Package obslog is the structured-logging seam shared by the builder and
// reader packages. It defaults to discarding everything so the library is
// silent unless a caller opts in, mirroring how the original hive tooling
// wires up its own slog logger.
package obslog

import (
	"io"
	"log/slog"
)

// L is the package-level logger every internal package logs through. It
// starts out discarding all records.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces L. Passing nil restores the discarding default.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = logger
}
