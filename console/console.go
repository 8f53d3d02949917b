package console

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gookit/color"
	"io"
	"strings"
)

const affirmativeAnswer = "yes"

// ErrInputClosed the user closed the input (Ctrl+D) while a question was waiting for an answer
var ErrInputClosed = errors.New("input closed")

var (
	titleStyle    = color.New(color.FgCyan, color.OpBold)
	questionStyle = color.New(color.FgYellow)
	errorStyle    = color.New(color.FgRed)
	successStyle  = color.New(color.FgGreen)
)

// Console line oriented dialog with the user. Every answer is trimmed and lower cased
type Console struct {
	reader  *bufio.Reader
	out     io.Writer
	colored bool
}

func NewConsole(in io.Reader, out io.Writer, colored bool) *Console {
	return &Console{
		reader:  bufio.NewReader(in),
		out:     out,
		colored: colored,
	}
}

// Out returns the writer used by the console
func (c *Console) Out() io.Writer {
	return c.out
}

// Ask prints the question and blocks until the user enters a line. Lines have no length limit,
// a last line without a newline is still an answer
func (c *Console) Ask(question string) (string, error) {
	fmt.Fprint(c.out, c.paint(questionStyle, question))

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(c.out)
		return "", ErrInputClosed
	}

	return strings.ToLower(strings.TrimSpace(line)), nil
}

// Confirm asks a yes/no question. Only "yes" counts as an affirmative answer
func (c *Console) Confirm(question string) (bool, error) {
	answer, err := c.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == affirmativeAnswer, nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Title prints a section header, e.g. "=== Station Analysis ==="
func (c *Console) Title(title string) {
	fmt.Fprintf(c.out, "\n%s\n\n", c.paint(titleStyle, fmt.Sprintf("=== %s ===", title)))
}

func (c *Console) Error(message string) {
	fmt.Fprintln(c.out, c.paint(errorStyle, message))
}

func (c *Console) Success(message string) {
	fmt.Fprintln(c.out, c.paint(successStyle, message))
}

// Separator prints a line made of width times char
func (c *Console) Separator(char string, width int) {
	fmt.Fprintln(c.out, strings.Repeat(char, width))
}

func (c *Console) paint(style color.Style, text string) string {
	if !c.colored {
		return text
	}
	return style.Sprint(text)
}
