package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry is one recorded UI call.
type Entry struct {
	Method string
	Value  string
}

type recordingState struct {
	mu      sync.Mutex
	entries []Entry
	inputs  []string
	next    int
	buf     bytes.Buffer
}

// RecordingUI captures every call for assertions and serves scripted
// inputs to Ask, Password and Confirm in order. Running out of inputs
// panics.
type RecordingUI struct {
	state *recordingState
}

func NewRecordingUI(scriptedInputs ...string) *RecordingUI {
	return &RecordingUI{state: &recordingState{inputs: scriptedInputs}}
}

func (r *RecordingUI) record(method, value string) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.entries = append(r.state.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) nextInput(caller string) string {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if r.state.next >= len(r.state.inputs) {
		panic(fmt.Sprintf("RecordingUI: no scripted input left for %s (consumed %d so far)", caller, r.state.next))
	}
	input := r.state.inputs[r.state.next]
	r.state.next++
	return input
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+"="+row[1])
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	r.record("Table", strings.Join(headers, "|"))
	for _, row := range rows {
		r.record("Row", strings.Join(row, "|"))
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

// Ask panics when the scripted input fails validate since no user is
// there to correct it.
func (r *RecordingUI) Ask(prompt string, validate func(string) error) string {
	input := r.nextInput("Ask")
	r.record("Ask", input)
	if validate != nil {
		if err := validate(input); err != nil {
			panic(fmt.Sprintf("RecordingUI: scripted input %q failed validation in Ask: %s", input, err))
		}
	}
	return input
}

func (r *RecordingUI) Password(prompt string) (string, error) {
	r.record("Password", prompt)
	return r.nextInput("Password"), nil
}

func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.record("Confirm", prompt)
	input := strings.ToLower(strings.TrimSpace(r.nextInput("Confirm")))
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

func (r *RecordingUI) Indent() UI {
	return r
}

func (r *RecordingUI) Writer() io.Writer {
	return &lockedWriter{state: r.state}
}

type lockedWriter struct {
	state *recordingState
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	return w.state.buf.Write(p)
}

func (r *RecordingUI) Entries() []Entry {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return append([]Entry(nil), r.state.entries...)
}

// Values returns the values recorded by method.
func (r *RecordingUI) Values(method string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage reports whether any recorded value contains substr, case
// insensitive.
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.Entries() {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) Output() string {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.buf.String()
}
