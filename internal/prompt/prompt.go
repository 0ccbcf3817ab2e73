package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console prompts on Out and reads answers from In.
type Console struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewConsole returns a Console bound to stdin/stdout.
func NewConsole() *Console {
	return &Console{In: os.Stdin, Out: os.Stdout}
}

// Secret prompts for a sensitive value without echoing it when In is a
// terminal. The answer is whitespace-trimmed; an empty answer is returned
// as-is so the caller can treat it as "declined".
func (c *Console) Secret(label string) (string, error) {
	fmt.Fprintf(c.Out, "%s: ", label)

	if f, ok := c.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.Out)
		if err != nil {
			return "", fmt.Errorf("reading secret input: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// YesNo asks question until it gets a recognized answer. It returns true for
// y/yes and false for n/no. The loop has no retry cap; it ends only on a
// recognized answer or end of input.
func (c *Console) YesNo(question string) (bool, error) {
	for {
		fmt.Fprintf(c.Out, "%s (Y/N): ", question)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(c.Out, "Invalid input. Please enter 'Y' or 'N'.")
		}
	}
}

func (c *Console) readLine() (string, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	// A final line without a trailing newline is still an answer.
	return line, nil
}
