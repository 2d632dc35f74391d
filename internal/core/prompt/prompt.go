// Package prompt reads interactive answers from an input stream.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream closes before any text arrives.
var ErrNoInput = errors.New("no value entered")

// Reader asks questions on out and reads the answers from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader over in and out.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

// ReadLine waits for one line of input and returns it without the line
// terminator. It blocks until a line arrives, the input is closed or ctx is
// done. Text followed by end of input counts as a line.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := r.in.ReadString('\n')
		switch {
		case err == nil, errors.Is(err, io.EOF) && line != "":
			done <- lineResult{line: strings.TrimRight(line, "\r\n")}
		case errors.Is(err, io.EOF):
			done <- lineResult{err: ErrNoInput}
		default:
			done <- lineResult{err: err}
		}
	}()

	select {
	case res := <-done:
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Ask prints question exactly as given, then returns the next line of input
// with surrounding whitespace removed.
func (r *Reader) Ask(ctx context.Context, question string) (string, error) {
	if _, err := fmt.Fprint(r.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := r.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, ErrNoInput) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("failed to read input for '%s': %w", strings.TrimSpace(question), err)
	}
	return strings.TrimSpace(line), nil
}
