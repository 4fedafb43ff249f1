package ui

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Status shows a spinner while a remote call runs. A disabled Status only
// prints the final message.
type Status struct {
	w       io.Writer
	spinner *spinner.Spinner
}

// StartStatus starts a spinner on w with message as suffix. The spinner is
// only animated when enabled is set; pass [IsTerminal] of w.
func StartStatus(w io.Writer, message string, enabled bool) *Status {
	st := &Status{w: w}
	if !enabled {
		return st
	}

	opt := spinner.WithWriter(w)
	if f, ok := w.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opt)
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	st.spinner = s
	return st
}

// Stop clears the spinner line and prints final when it is not empty.
func (s *Status) Stop(final string) {
	if s.spinner != nil {
		s.spinner.Stop()
	}
	if final != "" {
		_, _ = io.WriteString(s.w, EnsureNewline(final))
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
