package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs a warning if the close fails. It is meant
// for deferred closes of HTTP response bodies where the close error must not
// override the primary error of the surrounding function.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}
