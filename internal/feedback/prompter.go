// Package feedback implements interactive capture of event ratings and
// comments. The input source is injected so tests and non-interactive
// callers can script the session instead of reading a terminal.
package feedback

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads rating and comment input line by line from an arbitrary
// reader, writing prompts to an arbitrary writer.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter constructs a prompter over the given input and output.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// PromptRating asks for an integer rating between 1 and 5 and keeps
// re-prompting until it gets one. Non-integer and out-of-range input is
// reported and swallowed, never returned. An error is only returned when
// the input source is exhausted before a valid rating arrives.
func (p *Prompter) PromptRating() (int, error) {
	for {
		fmt.Fprint(p.out, "Enter rating (1-5): ")
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		rating, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.out, "Not a number, try again.")
			continue
		}
		if rating < 1 || rating > 5 {
			fmt.Fprintln(p.out, "Rating must be between 1 and 5.")
			continue
		}
		return rating, nil
	}
}

// PromptComment asks for an optional comment; empty input is accepted.
func (p *Prompter) PromptComment() (string, error) {
	fmt.Fprint(p.out, "Enter comment (optional): ")
	line, err := p.readLine()
	if err != nil {
		if err == io.EOF {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}
