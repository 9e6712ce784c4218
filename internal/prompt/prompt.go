// Package prompt reads interactive console input for the analyzer driver.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	apperrors "chargecli/internal/errors"
)

var (
	trueWords  = []string{"yes", "y", "true", "1"}
	falseWords = []string{"no", "n", "false", "0"}
)

// Prompter reads lines from a console reader and writes prompt text to a
// console writer. Both are injected so tests can drive the dialogue.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints promptText on its own line, then reads and returns one
// trimmed input line.
func (p *Prompter) ReadLine(promptText string) (string, error) {
	fmt.Fprintln(p.out, promptText)
	return p.readTrimmedLine()
}

// ReadBool reads lines until one matches a yes or no word. Accepted
// answers are yes/y/true/1 and no/n/false/0, case-insensitive. Any other
// answer prints an invalid-value notice and re-prompts.
func (p *Prompter) ReadBool() (bool, error) {
	for {
		line, err := p.readTrimmedLine()
		if err != nil {
			return false, err
		}

		if containsFold(trueWords, line) {
			return true, nil
		}
		if containsFold(falseWords, line) {
			return false, nil
		}

		fmt.Fprintln(p.out, "Sorry, the value you inputted was not valid.")
		fmt.Fprintln(p.out, "Yay, or nay? [y/n]:")
	}
}

// CollectFilenames prompts for filenames one at a time, asking after each
// whether another should be loaded. It returns the entered names in
// order; the list always holds at least one entry.
func (p *Prompter) CollectFilenames() ([]string, error) {
	var files []string
	for {
		name, err := p.ReadLine("Please enter the name of the file you wish to load:")
		if err != nil {
			return nil, err
		}
		files = append(files, name)

		fmt.Fprintln(p.out, "Is there another file you'd like to load? [y/n]")
		more, err := p.ReadBool()
		if err != nil {
			return nil, err
		}
		if !more {
			return files, nil
		}
	}
}

// WaitForAck prints the exit notice and blocks until the user presses
// enter. EOF counts as acknowledgment so piped input does not hang the
// caller.
func (p *Prompter) WaitForAck() error {
	fmt.Fprintln(p.out, "Press any key to exit...")
	_, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// readTrimmedLine reads one line and trims surrounding whitespace. A
// final line without a trailing newline is still returned; the next read
// reports an input error.
func (p *Prompter) readTrimmedLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", apperrors.NewInputError("console input ended before an answer", err)
	}
	return strings.TrimSpace(line), nil
}

func containsFold(words []string, s string) bool {
	for _, w := range words {
		if strings.EqualFold(w, s) {
			return true
		}
	}
	return false
}
