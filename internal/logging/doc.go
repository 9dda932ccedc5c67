// Package logging provides implementations of the bifslide.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: plain text lines on stderr (or any io.Writer)
//   - ZapLogger: structured JSON records through go.uber.org/zap
//   - NullLogger: discards everything
//
// New selects between the console and JSON loggers by format name, which is
// how the CLI wires the log.format configuration key.
package logging
