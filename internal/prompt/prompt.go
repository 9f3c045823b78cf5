// Package prompt reads operator answers from a line-oriented terminal.
//
// Every interactive loop in the tool is bounded: Confirm evaluates at most
// MaxRetries answers after the initial one and then defaults to "no", and
// every read reports io.EOF once input is exhausted so callers can stop.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxRetries is how many further answers Confirm reads after an invalid
// initial answer before defaulting to "no".
const MaxRetries = 3

// Messages written by Confirm.
const (
	RetryPrompt      = "\nPlease enter Y (Yes) or N (No).\n"
	ExhaustedWarning = "Too many invalid entries. Defaulting to No."
)

// Prompter writes prompts to out and reads answers from in, one line each.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter over the given terminal streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out returns the writer prompts are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes formatted text to the terminal.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the terminal.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Line writes prompt verbatim and returns the next input line without its
// line terminator. Returns io.EOF once input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm interprets initial as a yes/no answer.
//
// Answers are trimmed and case-folded; only "y" and "n" are accepted. An
// invalid answer re-prompts, up to MaxRetries times. When the retries are
// used up (or input ends) the answer defaults to no.
func (p *Prompter) Confirm(initial string) bool {
	answer := normalize(initial)
	for attempt := 0; ; attempt++ {
		switch answer {
		case "y":
			return true
		case "n":
			return false
		}

		if attempt == MaxRetries {
			break
		}

		next, err := p.Line(RetryPrompt)
		if err != nil {
			return false
		}
		answer = normalize(next)
	}

	fmt.Fprintln(p.out, ExhaustedWarning)
	return false
}

// Ask writes question, reads one answer and passes it through Confirm.
func (p *Prompter) Ask(question string) bool {
	answer, err := p.Line(question)
	if err != nil {
		return false
	}
	return p.Confirm(answer)
}

func normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
