package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is the line-oriented terminal edge: it implements app.Player.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Show writes one line.
func (c *Console) Show(text string) {
	fmt.Fprintln(c.out, text)
}

// ReadLine returns the next line without its trailing newline. ok is false once
// the input is exhausted.
func (c *Console) ReadLine() (string, bool) {
	line, err := c.readLine()
	return line, err == nil
}

// readLine has no length limit. A final line without a newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInteger blocks until a line parses as an integer. Anything else is
// silently skipped. It only fails when the input ends.
func (c *Console) ReadInteger() (int, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		if value, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return value, nil
		}
	}
}

// ReadName reads the player name line.
func (c *Console) ReadName() (string, bool) {
	return c.ReadLine()
}
