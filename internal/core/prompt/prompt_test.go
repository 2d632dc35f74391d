package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/terms/internal/core/prompt"
)

func TestAsk_TrimsAnswerAndPrintsQuestion(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	r := prompt.New(strings.NewReader("  a small furry animal  \nignored\n"), &out)

	answer, err := r.Ask(context.Background(), "Enter value for cat: ")
	require.NoError(t, err)
	assert.Equal(t, "a small furry animal", answer)
	assert.Equal(t, "Enter value for cat: ", out.String())
}

func TestReadLine_ConsecutiveLines(t *testing.T) {
	t.Parallel()
	r := prompt.New(strings.NewReader("first\r\nsecond\n"), io.Discard)

	first, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", first)

	second, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", second)
}

func TestReadLine_TextWithoutNewlineBeforeEOF(t *testing.T) {
	t.Parallel()
	r := prompt.New(strings.NewReader("no newline"), io.Discard)

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no newline", line)
}

func TestReadLine_ClosedInput(t *testing.T) {
	t.Parallel()
	r := prompt.New(strings.NewReader(""), io.Discard)

	_, err := r.ReadLine(context.Background())
	require.ErrorIs(t, err, prompt.ErrNoInput)
}

func TestReadLine_ReadError(t *testing.T) {
	t.Parallel()
	boom := errors.New("device gone")
	r := prompt.New(iotestErrReader{err: boom}, io.Discard)

	_, err := r.Ask(context.Background(), "Enter value for x: ")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestReadLine_CancelledWhileWaiting(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	r := prompt.New(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReadLine_WaitsForDelayedInput(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	r := prompt.New(pr, io.Discard)

	go func() {
		time.Sleep(10 * time.Millisecond)
		_, _ = pw.Write([]byte("eventually\n"))
		_ = pw.Close()
	}()

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eventually", line)
}

type iotestErrReader struct{ err error }

func (r iotestErrReader) Read([]byte) (int, error) { return 0, r.err }
