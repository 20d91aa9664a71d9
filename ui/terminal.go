package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
	promptPrefix = "> "
)

// TerminalUI writes to out and reads from in. Colours and the spinner are
// only used when out is a terminal.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	inFd        int
	tty         bool
	au          aurora.Aurora
}

func NewTerminalUI() *TerminalUI {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out:  os.Stdout,
		in:   bufio.NewReader(os.Stdin),
		inFd: int(os.Stdin.Fd()),
		tty:  tty,
		au:   aurora.NewAurora(tty),
	}
}

// NewPlainUI writes uncoloured output to out and reads from in.
func NewPlainUI(out io.Writer, in io.Reader) *TerminalUI {
	return &TerminalUI{
		out:  out,
		in:   bufio.NewReader(in),
		inFd: -1,
		au:   aurora.NewAurora(false),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.writeLine(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.writeLine(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.writeLine(u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.writeLine(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

//	===== Signed transaction =====
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", bars-left)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

// KeyValue pads labels to the widest one. Widths ignore ANSI codes so
// coloured labels line up too.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	maxLabel := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(ansi.Strip(r[0])); w > maxLabel {
			maxLabel = w
		}
	}
	for _, r := range rows {
		pad := maxLabel - runewidth.StringWidth(ansi.Strip(r[0]))
		u.writeLine(fmt.Sprintf("%s%s  %s", r[0], strings.Repeat(" ", pad), r[1]))
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	borderStyle := lipgloss.NewStyle()
	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	if u.tty {
		borderStyle = borderStyle.Foreground(lipgloss.Color("240"))
		headerStyle = headerStyle.Bold(true)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	for _, line := range strings.Split(t.String(), "\n") {
		u.writeLine(line)
	}
}

// Spinner is a no-op on non terminals, msg is printed once instead.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.writeLine(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Prefix = u.prefix()
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		fmt.Fprintf(u.out, "\n")
	}
}

func (u *TerminalUI) Ask(prompt string, validate func(string) error) string {
	for {
		if prompt != "" {
			u.writeLine(prompt)
		}
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, _ := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil {
			return input
		}
		err := validate(input)
		if err == nil {
			return input
		}
		u.Error("%s", err)
	}
}

func (u *TerminalUI) Password(prompt string) (string, error) {
	fmt.Fprintf(u.out, "%s%s", u.prefix(), prompt)
	if !term.IsTerminal(u.inFd) {
		text, err := u.in.ReadString('\n')
		if err != nil && text == "" {
			return "", fmt.Errorf("couldn't read password: %w", err)
		}
		return strings.TrimRight(text, "\r\n"), nil
	}
	pwd, err := term.ReadPassword(u.inFd)
	fmt.Fprintf(u.out, "\n")
	if err != nil {
		return "", fmt.Errorf("couldn't read password: %w", err)
	}
	return string(pwd), nil
}

func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[Y/n]"
	if !defaultYes {
		options = "[y/N]"
	}
	input := strings.ToLower(strings.TrimSpace(u.Ask(prompt+" "+options, func(s string) error {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "y", "n":
			return nil
		}
		return fmt.Errorf("please enter y or n")
	})))
	if input == "" {
		return defaultYes
	}
	return input == "y"
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.indentLevel++
	return &child
}

// Writer prepends the current indentation to every line written to it.
func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
