// Package ui is the terminal surface of the walletclient commands.
//
// Commands talk to a UI instead of stdout so tests can swap in a
// RecordingUI that captures output and serves scripted input.
package ui

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type UI interface {
	// Info writes a neutral status line.
	Info(format string, args ...any)
	// Success writes a positive outcome in green.
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error writes a failure in red. It doesn't exit.
	Error(format string, args ...any)
	// Critical writes data the user must review, such as a signed payload
	// or a transaction hash.
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)
	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)
	// Table renders a bordered table with a header row.
	Table(headers []string, rows [][]string)

	// Spinner starts a spinner with msg and returns the function that
	// stops it.
	Spinner(msg string) func()

	// Ask prints prompt and reads a line until validate accepts it. A nil
	// validate accepts anything.
	Ask(prompt string, validate func(string) error) string
	// Password reads a line without echoing it.
	Password(prompt string) (string, error)
	Confirm(prompt string, defaultYes bool) bool

	// Indent returns a child UI one level deeper sharing the same
	// writer and reader.
	Indent() UI
	Writer() io.Writer
}

var printer = message.NewPrinter(language.English)

// FormatNumber groups digits by thousands, e.g. 21000 becomes 21,000.
func FormatNumber(n uint64) string {
	return printer.Sprintf("%d", n)
}
