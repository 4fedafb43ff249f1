package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ErrNotTerminal indicates hidden input was requested without a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrInputMismatch indicates the confirmation did not match.
	ErrInputMismatch = errors.New("entries do not match")
)

// Prompter reads secrets without echoing them.
type Prompter interface {
	ReadSecret(prompt string) (string, error)
}

type termPrompter struct {
	in  *os.File
	out io.Writer
}

// NewTermPrompter reads from in and writes prompts to out.
func NewTermPrompter(in *os.File, out io.Writer) Prompter {
	return &termPrompter{in: in, out: out}
}

func (p *termPrompter) ReadSecret(prompt string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot read hidden input: %w", ErrNotTerminal)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read hidden input: %w", err)
	}
	return string(secret), nil
}

// ReadConfirmedSecret asks twice and requires both entries to match.
func ReadConfirmedSecret(p Prompter, prompt, confirmPrompt string) (string, error) {
	first, err := p.ReadSecret(prompt)
	if err != nil {
		return "", err
	}
	second, err := p.ReadSecret(confirmPrompt)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrInputMismatch
	}
	return first, nil
}
